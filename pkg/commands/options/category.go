package options

import (
	"github.com/spf13/cobra"
)

// CategoryOptions captures category selection flags for item commands.
type CategoryOptions struct {
	Category string
	None     bool
	Yes      bool
}

// AddCategoryArg registers the category selector flag.
func AddCategoryArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Specify a category by id or name.")
}

// AddNoneArg registers the flag that clears a category assignment.
func AddNoneArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().BoolVar(&o.None, "none", false,
		"Clear the category assignment.")
}

// AddAssumeYesArg registers the flag that skips the deletion prompt.
func AddAssumeYesArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Delete without prompting, even when items reference the category.")
}
