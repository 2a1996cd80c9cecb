package category

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"checkli/pkg/app"
	"checkli/pkg/checklist"
	"checkli/pkg/printers"
)

// Delete removes a category, unassigning every item that references
// it. When items are affected and Assume is false, the user is asked
// on stdin before anything changes.
type Delete struct {
	ID     int
	Assume bool

	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete category, no service")
	}

	confirm := n.prompt
	if n.Assume {
		confirm = func(*checklist.Category, int) bool { return true }
	}

	deleted, err := n.Service.DeleteCategory(n.ID, confirm)
	if err != nil {
		return err
	}
	if !deleted {
		return nil
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Categories")
	pp.CategoryTable(n.Service.Categories(), n.Service.Counts())
	return nil
}

func (n *Delete) prompt(c *checklist.Category, refs int) bool {
	fmt.Printf("Category %q has %d item(s); they will be unassigned. Delete? [y/N] ", c.Name, refs)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
