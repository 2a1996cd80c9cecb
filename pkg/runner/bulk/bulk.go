// Package bulk provides the runner logic for newline-delimited item
// import.
package bulk

import (
	"context"
	"errors"
	"fmt"

	"checkli/pkg/app"
	"checkli/pkg/printers"
)

// Bulk creates one item per non-empty line of Raw, all assigned to the
// same optional category.
type Bulk struct {
	Raw        string
	CategoryID *int

	Service *app.Service
}

func (n *Bulk) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not bulk add, no service")
	}

	created, err := n.Service.BulkAdd(n.Raw, n.CategoryID)
	if err != nil {
		return err
	}
	if created == 0 {
		// Nothing usable in the paste; stay quiet like the single-add
		// empty case.
		return nil
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Notice("Added %d items successfully!", created)
	pp.TitleWithCount("Checklist", n.Service.Counts().Total)
	pp.Checklist(n.Service.Visible(), n.Service.FindCategory)
	return nil
}
