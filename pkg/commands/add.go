package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"checkli/pkg/commands/options"
	"checkli/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	text := ""

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add an item",
		Example: `
checkli add buy milk
checkli add --category errands return library books
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires item text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			categoryID, err := svc.ResolveCategory(co.Category)
			if err != nil {
				return output.HandleError(err)
			}
			s := add.Add{
				Text:       text,
				CategoryID: categoryID,
				Service:    svc,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddCategoryArg(cmd, co)
	registerCategoryCompletion(cmd)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
