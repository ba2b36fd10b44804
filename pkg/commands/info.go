package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ihic/pkg/commands/options"
	"tableflip.dev/ihic/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, co *options.ConfigOptions) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration, the CSV and the last build.",
		Example: `
ihic info
ihic info --config ./ihic.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := co.Load()
			if err != nil {
				return err
			}
			s := info.Info{
				Config: cfg,
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
