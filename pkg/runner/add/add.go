package add

import (
	"context"
	"errors"

	"checkli/pkg/app"
	"checkli/pkg/printers"
)

// Add creates a single item, optionally assigned to a category.
type Add struct {
	Text       string
	CategoryID *int

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	item, err := n.Service.AddItem(n.Text, n.CategoryID)
	if err != nil {
		return err
	}
	if item == nil {
		// Empty text after trimming is a silent no-op.
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Checklist", n.Service.Counts().Total)
	pp.Checklist(n.Service.Visible(), n.Service.FindCategory)
	return nil
}
