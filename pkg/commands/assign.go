package commands

import (
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"checkli/pkg/commands/options"
	"checkli/pkg/runner/assign"
)

func addAssign(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "assign <id>",
		Short: "Assign an item to a category, or clear it",
		Example: `
checkli assign 3 --category errands
checkli assign 3 --none
`,
		Args: func(_ *cobra.Command, args []string) error {
			return options.ParseIDArg(args, io)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if co.Category == "" && !co.None {
				return errors.New("requires --category or --none")
			}
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			s := assign.Assign{
				ID:      io.ID,
				Service: svc,
			}
			if !co.None {
				categoryID, err := svc.ResolveCategory(co.Category)
				if err != nil {
					return output.HandleError(err)
				}
				s.CategoryID = categoryID
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddCategoryArg(cmd, co)
	options.AddNoneArg(cmd, co)
	registerCategoryCompletion(cmd)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
