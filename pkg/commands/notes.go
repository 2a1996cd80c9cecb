package commands

import (
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"checkli/pkg/commands/options"
	"checkli/pkg/runner/notes"
)

func addNotes(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	text := ""
	clear := false

	cmd := &cobra.Command{
		Use:     "notes <id> [text]",
		Aliases: []string{"note"},
		Short:   "Show or set the notes on an item",
		Example: `
checkli notes 3
checkli notes 3 pick the blue one
checkli notes 3 --clear
`,
		Args: func(_ *cobra.Command, args []string) error {
			if err := options.ParseIDArg(args, io); err != nil {
				return err
			}
			text = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context())
			if err != nil {
				return err
			}
			// Without text or --clear this only shows the notes; never
			// calling the setter is what distinguishes "cancelled" from
			// "cleared to empty".
			show := text == "" && !clear
			s := notes.Notes{
				ID:      io.ID,
				Text:    text,
				Show:    show,
				Service: svc,
			}
			if clear {
				s.Text = ""
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the notes.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
