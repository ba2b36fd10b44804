package options

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/ihic/pkg/logging"
)

// LogOptions
type LogOptions struct {
	Verbose bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log every generated page.")
}

func (o *LogOptions) Logger() (*zap.Logger, error) {
	return logging.New(logging.Options{Verbose: o.Verbose})
}
