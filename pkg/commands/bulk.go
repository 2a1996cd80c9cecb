package commands

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"checkli/pkg/commands/options"
	"checkli/pkg/runner/bulk"
)

func addBulk(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	file := ""

	cmd := &cobra.Command{
		Use:   "bulk [text...]",
		Short: "Add many items from newline-delimited text",
		Long: `Add one item per non-empty line. Text is read from arguments,
--file, or stdin, in that order of preference.`,
		Example: `
pbpaste | checkli bulk
checkli bulk --file groceries.txt --category errands
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			raw, err := bulkInput(args, file)
			if err != nil {
				return err
			}

			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			categoryID, err := svc.ResolveCategory(co.Category)
			if err != nil {
				return output.HandleError(err)
			}
			s := bulk.Bulk{
				Raw:        raw,
				CategoryID: categoryID,
				Service:    svc,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read lines from a file instead of stdin.")
	options.AddCategoryArg(cmd, co)
	registerCategoryCompletion(cmd)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func bulkInput(args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
