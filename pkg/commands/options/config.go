// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ihic/pkg/config"
)

// ConfigOptions selects where configuration is read from.
type ConfigOptions struct {
	File    string
	EnvFile string
}

// AddConfigArgs registers the config flags on every command of the tree.
func AddConfigArgs(cmd *cobra.Command, o *ConfigOptions) {
	cmd.PersistentFlags().StringVarP(&o.File, "config", "c", "",
		"Config file (default is .ihic.yaml in the working directory or $IHIC_CONFIG_PATH).")
	cmd.PersistentFlags().StringVar(&o.EnvFile, "env-file", ".env",
		"Environment file loaded before the config. Missing files are ignored.")
}

// Load resolves the effective configuration.
func (o *ConfigOptions) Load() (config.Config, error) {
	if o.EnvFile != "" {
		if err := config.LoadDotEnv(o.EnvFile); err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(o.File)
}
