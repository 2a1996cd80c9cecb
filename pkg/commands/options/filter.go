// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions captures the status/category filter flags.
type FilterOptions struct {
	Status   string
	Category string
	Summary  bool
}

// AddFilterArgs wires filter-related flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Status, "status", "s", "all",
		"Show all, checked, or unchecked items.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Scope the list to one category (id or name).")
	cmd.Flags().BoolVar(&o.Summary, "summary", false,
		"Show per-filter item counts.")
}
