package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/ihic/pkg/store"
)

// WatchOptions
type WatchOptions struct {
	Watch    bool
	Throttle time.Duration
}

func AddWatchArgs(cmd *cobra.Command, o *WatchOptions) {
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep running and regenerate whenever the CSV changes.")
	cmd.Flags().DurationVar(&o.Throttle, "throttle", store.DefaultThrottle,
		"Quiet period used to coalesce bursts of writes in watch mode.")
}
