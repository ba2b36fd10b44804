package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/ihic/pkg/config"
	"tableflip.dev/ihic/pkg/source"
	"tableflip.dev/ihic/pkg/store"
)

// Info reports the effective configuration and the state of the source and
// output.
type Info struct {
	Config      config.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	if override := os.Getenv(config.EnvConfigPath); override != "" {
		_, _ = fmt.Fprintln(w, config.EnvConfigPath, "found on env, using", override)
	} else {
		_, _ = faint.Fprintln(w, config.EnvConfigPath, "env var not set")
	}

	file := n.Config.File
	if file == "" {
		file = "none"
	}
	_, _ = fmt.Fprintln(w, "Config.file:   ", file)
	_, _ = fmt.Fprintln(w, "Config.source: ", n.Config.Source)
	_, _ = fmt.Fprintln(w, "Config.output: ", n.Config.Output)
	_, _ = fmt.Fprintln(w, "Config.landing:", n.Config.Landing)
	_, _ = fmt.Fprintln(w, "Config.contact:", n.Config.Contact)
	_, _ = fmt.Fprintln(w, "")

	_, _ = bold.Fprintln(w, "Source:")
	switch _, err := os.Stat(n.Config.Source); {
	case errors.Is(err, fs.ErrNotExist):
		_, _ = color.New(color.FgRed).Fprintln(w, "  missing")
	case err != nil:
		return err
	default:
		sum, err := store.Checksum(n.Config.Source)
		if err != nil {
			return err
		}
		records, err := source.ReadFile(ctx, n.Config.Source)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "  %d items, checksum %s\n", len(records), sum)
	}

	_, _ = bold.Fprintln(w, "Last build:")
	if n.Persistence == nil {
		var err error
		if n.Persistence, err = store.Load(n.Config); err != nil {
			return err
		}
	}
	m, err := n.Persistence.ReadManifest()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		_, _ = faint.Fprintln(w, "  never generated")
	case err != nil:
		return err
	default:
		_, _ = fmt.Fprintf(w, "  %s, %d items\n", m.GeneratedAt, m.Items)
	}
	return nil
}
