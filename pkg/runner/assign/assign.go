// Package assign provides the runner logic for item category
// assignment.
package assign

import (
	"context"
	"errors"
	"fmt"

	"checkli/pkg/app"
	"checkli/pkg/printers"
)

// Assign sets or clears the category reference on one item.
type Assign struct {
	ID         int
	CategoryID *int

	Service *app.Service
}

func (n *Assign) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not assign, no service")
	}

	if _, err := n.Service.SetCategoryForItem(n.ID, n.CategoryID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.TitleWithCount("Checklist", n.Service.Counts().Total)
	pp.Checklist(n.Service.Visible(), n.Service.FindCategory)
	return nil
}
