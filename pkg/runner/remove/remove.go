// Package remove provides the runner logic for deleting items.
package remove

import (
	"context"
	"errors"
	"fmt"

	"checkli/pkg/app"
	"checkli/pkg/printers"
)

// Remove deletes one item permanently.
type Remove struct {
	ID int

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}

	if _, err := n.Service.DeleteItem(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.TitleWithCount("Checklist", n.Service.Counts().Total)
	pp.Checklist(n.Service.Visible(), n.Service.FindCategory)
	return nil
}
