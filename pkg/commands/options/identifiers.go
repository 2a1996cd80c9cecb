package options

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     int
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each item.")
}

// ParseIDArg reads the leading positional argument as an item id.
func ParseIDArg(args []string, o *IDOptions) error {
	if len(args) < 1 {
		return errors.New("requires an item id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("item id must be a number")
	}
	o.ID = id
	return nil
}
