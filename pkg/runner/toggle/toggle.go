// Package toggle provides the runner logic for flipping item completion.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"checkli/pkg/app"
	"checkli/pkg/printers"
)

// Toggle flips the checked state of one item.
type Toggle struct {
	ID int

	Service *app.Service
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle, no service")
	}

	if _, err := n.Service.ToggleItem(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.TitleWithCount("Checklist", n.Service.Counts().Total)
	pp.Checklist(n.Service.Visible(), n.Service.FindCategory)
	return nil
}
