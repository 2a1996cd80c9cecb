package category

import (
	"context"
	"errors"
	"fmt"

	"checkli/pkg/app"
	"checkli/pkg/printers"
)

// Add creates a new category with the next palette color.
type Add struct {
	Name string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add category, no service")
	}

	c, err := n.Service.AddCategory(n.Name)
	if err != nil {
		return err
	}
	if c == nil {
		// Empty name after trimming is a silent no-op.
		return nil
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Categories")
	pp.CategoryTable(n.Service.Categories(), n.Service.Counts())
	return nil
}
