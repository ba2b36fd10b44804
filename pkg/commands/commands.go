package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/ihic/pkg/commands/options"
	"tableflip.dev/ihic/pkg/printers"
	"tableflip.dev/ihic/pkg/runner/generate"
	"tableflip.dev/ihic/pkg/runner/watch"
)

func New() *cobra.Command {
	co := &options.ConfigOptions{}
	lo := &options.LogOptions{}
	wo := &options.WatchOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "ihic",
		Short: base.Wrap80("Generate i-HIC item detail pages from a CSV sheet."),
		Long: base.Wrap80("Reads the item sheet and writes one HTML page per item, " +
			"a manifest.json and a copy of the landing page into the output directory. " +
			"With --watch the pages are regenerated whenever the sheet changes."),
		Example: `
ihic
ihic --watch
ihic --config ./ihic.yaml --pages
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			cfg, err := co.Load()
			if err != nil {
				return err
			}
			log, err := lo.Logger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pp := &printers.PrettyPrint{Out: cmd.OutOrStdout(), Pages: oo.Pages}
			g := &generate.Generate{Config: cfg, Logger: log}

			sum, err := g.Do(ctx)
			if err != nil {
				return err
			}
			pp.Summary(sum)

			if !wo.Watch {
				return nil
			}
			w := &watch.Watch{
				Source:   cfg.Source,
				Run:      g.Do,
				Logger:   log.With(zap.String("mode", "watch")),
				Report:   pp.Summary,
				Throttle: wo.Throttle,
			}
			return w.Do(ctx)
		},
	}

	options.AddConfigArgs(cmd, co)
	options.AddLogArgs(cmd, lo)
	options.AddWatchArgs(cmd, wo)
	options.AddOutputArgs(cmd, oo)

	AddCommands(cmd, co)
	return cmd
}

// AddCommands attaches the subcommands. They share the root's config flags.
func AddCommands(topLevel *cobra.Command, co *options.ConfigOptions) {
	addInfo(topLevel, co)
	addVersion(topLevel)
}
