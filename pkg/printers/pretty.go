package printers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"checkli/pkg/checklist"
	"checkli/pkg/glyph"
)

// PrettyPrint renders checklist state for the terminal.
type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("9999  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Checklist prints items in order. lookup resolves a category id to its
// category so rows can carry the colored badge; checked items render
// struck and faint.
func (pp *PrettyPrint) Checklist(items []*checklist.Item, lookup func(int) (*checklist.Category, bool)) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	notes := color.New(color.Faint)

	for _, item := range items {
		if pp.ShowID {
			id := fmt.Sprintf("%d", item.ID)
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}

		text := item.Text
		out := t
		if item.Checked {
			text = glyph.Strike(text)
			out = done
		}
		_, _ = out.Printf("%s %s", glyph.ForChecked(item.Checked), text)

		if item.CategoryID != nil && lookup != nil {
			if cat, ok := lookup(*item.CategoryID); ok {
				fmt.Printf(" %s", Badge(cat))
			}
		}
		if item.Notes != "" {
			_, _ = notes.Printf(" %s", glyph.HasNotes)
		}
		fmt.Println("")
	}
	_, _ = t.Println("")
}

// Notes prints the notes block for a single item.
func (pp *PrettyPrint) Notes(item *checklist.Item) {
	if item.Notes == "" {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no notes")
		return
	}
	f := color.New(color.Faint)
	for _, line := range strings.Split(item.Notes, "\n") {
		_, _ = f.Printf("  %s\n", line)
	}
}

// Notice prints a transient success style message.
func (pp *PrettyPrint) Notice(format string, args ...any) {
	g := color.New(color.FgGreen)
	_, _ = g.Printf(format+"\n", args...)
}

// Badge renders the category name tinted with its palette color.
func Badge(c *checklist.Category) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color))
	return style.Render(glyph.CategoryBar.String() + c.Name)
}
