// Package ui provides the interactive terminal presentation layer.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"checkli/pkg/app"
)

// UI launches the full-screen checklist interface.
type UI struct {
	Service *app.Service
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("can not open ui, no service")
	}

	m := New(ctx, u.Service)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
