package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"checkli/pkg/checklist"
	"checkli/pkg/commands/options"
	"checkli/pkg/runner/get"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"get", "ls"},
		Short:   "List items, filtered by status and category",
		Example: `
checkli list
checkli list --status unchecked
checkli list --category errands --summary
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}

			status, err := checklist.ParseStatusFilter(fo.Status)
			if err != nil {
				return output.HandleError(err)
			}

			category := checklist.CategoryAll
			if fo.Category != "" && fo.Category != string(checklist.CategoryAll) {
				id, err := svc.ResolveCategory(fo.Category)
				if err != nil {
					return output.HandleError(err)
				}
				category = checklist.FilterForCategory(*id)
			}

			s := get.Get{
				ShowID:      io.ShowID,
				Status:      status,
				Category:    category,
				ShowSummary: fo.Summary,
				Service:     svc,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	registerCategoryCompletion(cmd)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
