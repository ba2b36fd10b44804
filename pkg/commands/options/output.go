package options

import (
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	Pages bool
}

func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVarP(&o.Pages, "pages", "p", false,
		"List every generated page after a build.")
}
