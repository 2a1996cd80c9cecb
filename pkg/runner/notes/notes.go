// Package notes provides the runner logic for editing item notes.
package notes

import (
	"context"
	"errors"
	"fmt"

	"checkli/pkg/app"
	"checkli/pkg/printers"
)

// Notes sets or clears the free-text notes on one item. Show prints
// the current notes without mutating anything.
type Notes struct {
	ID   int
	Text string
	Show bool

	Service *app.Service
}

func (n *Notes) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit notes, no service")
	}

	pp := printers.PrettyPrint{ShowID: true}

	if n.Show {
		item, ok := n.Service.FindItem(n.ID)
		if !ok {
			return nil
		}
		fmt.Println("")
		pp.Title(item.Text)
		pp.Notes(item)
		return nil
	}

	if _, err := n.Service.SetNotes(n.ID, n.Text); err != nil {
		return err
	}

	item, ok := n.Service.FindItem(n.ID)
	if !ok {
		return nil
	}
	fmt.Println("")
	pp.Title(item.Text)
	pp.Notes(item)
	return nil
}
