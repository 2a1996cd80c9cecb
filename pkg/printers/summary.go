package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"checkli/pkg/checklist"
	"checkli/pkg/glyph"
)

const layoutISO = "2006-01-02"

// Summary prints the per-filter counts the filter bar displays.
func (pp *PrettyPrint) Summary(counts checklist.Counts, categories []*checklist.Category) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Filter"), glyph.Bold("Items"))
	tbl.AddRow("all", counts.Total)
	tbl.AddRow("checked", counts.Checked)
	tbl.AddRow("unchecked", counts.Unchecked)
	for _, c := range categories {
		tbl.AddRow(Badge(c), counts.PerCategory[c.ID])
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// CategoryTable prints the category collection with per-category item
// counts.
func (pp *PrettyPrint) CategoryTable(categories []*checklist.Category, counts checklist.Counts) {
	if len(categories) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no categories\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("ID"), glyph.Bold("Name"), glyph.Bold("Items"), glyph.Bold("Created"))
	for _, c := range categories {
		tbl.AddRow(c.ID, Badge(c), counts.PerCategory[c.ID], c.CreatedAt.Local().Format(layoutISO))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
