package get

import (
	"context"
	"errors"
	"fmt"

	"checkli/pkg/app"
	"checkli/pkg/checklist"
	"checkli/pkg/printers"
)

// Get prints the filtered checklist together with the count summary.
type Get struct {
	ShowID      bool
	Status      checklist.StatusFilter
	Category    checklist.CategoryFilter
	ShowSummary bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	if n.Status != "" {
		n.Service.SetStatusFilter(n.Status)
	}
	if n.Category != "" {
		if err := n.Service.SetCategoryFilter(n.Category); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	visible := n.Service.Visible()
	pp.TitleWithCount("Checklist", len(visible))
	pp.Checklist(visible, n.Service.FindCategory)

	if n.ShowSummary {
		pp.Summary(n.Service.Counts(), n.Service.Categories())
	}
	return nil
}
