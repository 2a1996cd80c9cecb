package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"checkli/pkg/app"
	"checkli/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "checkli",
		Short: base.Wrap80("Checklists with categories on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addList(topLevel)
	addToggle(topLevel)
	addDelete(topLevel)
	addNotes(topLevel)
	addAssign(topLevel)
	addCategory(topLevel)
	addBulk(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadService opens the store and reads both records into a Service.
func loadService(ctx context.Context) (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.Load(ctx, p)
}
