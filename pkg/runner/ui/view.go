package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"checkli/pkg/checklist"
	"checkli/pkg/glyph"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	checkedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	noteStyle    = lipgloss.NewStyle().Faint(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusStyle  = lipgloss.NewStyle().Faint(true)
	promptStyle  = lipgloss.NewStyle().Bold(true)
)

// itemRow adapts an item (plus its resolved category) for the list.
type itemRow struct {
	item *checklist.Item
	cat  *checklist.Category
}

func (r itemRow) FilterValue() string { return r.item.Text }

// rowDelegate renders one compact line per item.
type rowDelegate struct{}

func (d rowDelegate) Height() int  { return 1 }
func (d rowDelegate) Spacing() int { return 0 }

func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	row, ok := li.(itemRow)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = cursorStyle.Render("❯ ")
	}

	text := row.item.Text
	if row.item.Checked {
		text = checkedStyle.Render(text)
	}

	line := fmt.Sprintf("%s%s %s", cursor, glyph.ForChecked(row.item.Checked), text)
	if row.cat != nil {
		badge := lipgloss.NewStyle().Foreground(lipgloss.Color(row.cat.Color)).
			Render(glyph.CategoryBar.String() + row.cat.Name)
		line += " " + badge
	}
	if row.item.Notes != "" {
		line += " " + noteStyle.Render(glyph.HasNotes.String())
	}

	fmt.Fprint(w, line)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("checkli"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeBulk:
		b.WriteString(promptStyle.Render("Bulk add (ctrl+d adds, esc cancels)"))
		b.WriteString("\n")
		b.WriteString(m.paste.View())
		b.WriteString("\n")
	case modeAdd, modeNotes, modeCategory:
		b.WriteString(m.items.View())
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeConfirm:
		b.WriteString(m.items.View())
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf(
			"Category %q has %d item(s); they will be unassigned. Delete? [y/N]",
			m.confirmCat.Name, m.confirmRefs)))
		b.WriteString("\n")
	default:
		b.WriteString(m.items.View())
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) statusBar() string {
	counts := m.svc.Counts()

	scope := "all"
	if id, ok := m.svc.CategoryFilter().CategoryID(); ok {
		if cat, found := m.svc.FindCategory(id); found {
			scope = cat.Name
		}
	}

	status := statusStyle.Render(fmt.Sprintf(
		"%d items · %d checked · %d unchecked · status:%s · category:%s",
		counts.Total, counts.Checked, counts.Unchecked,
		m.svc.StatusFilter(), scope))

	if m.notice != "" {
		return status + "  " + noticeStyle.Render(m.notice)
	}
	return status
}
