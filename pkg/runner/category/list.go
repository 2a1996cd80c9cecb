package category

import (
	"context"
	"errors"
	"fmt"

	"checkli/pkg/app"
	"checkli/pkg/printers"
)

// List prints the category collection with per-category item counts.
type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list categories, no service")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Categories")
	pp.CategoryTable(n.Service.Categories(), n.Service.Counts())
	return nil
}
