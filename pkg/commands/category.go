package commands

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"checkli/pkg/commands/options"
	"checkli/pkg/runner/category"
)

func addCategory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat", "categories"},
		Short:   "Manage categories",
		Example: `
checkli category add errands
checkli category list
checkli category delete 2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCategoryAdd(cmd)
	addCategoryDelete(cmd)
	addCategoryList(cmd)

	topLevel.AddCommand(cmd)
}

func addCategoryAdd(topLevel *cobra.Command) {
	name := ""

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Example: `
checkli category add errands
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a category name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := category.Add{
				Name:    name,
				Service: svc,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addCategoryDelete(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	id := 0

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a category, unassigning its items",
		Example: `
checkli category delete 2
checkli category delete 2 --yes
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a category id")
			}
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New("category id must be a number")
			}
			id = parsed
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := category.Delete{
				ID:      id,
				Assume:  co.Yes,
				Service: svc,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddAssumeYesArg(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addCategoryList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List categories with item counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := category.List{
				Service: svc,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
