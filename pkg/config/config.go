// Package config resolves where the generator reads from and writes to.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultSource  = "Halal_Info_2.csv"
	DefaultOutput  = "generated"
	DefaultLanding = "index.html"
	DefaultContact = "pic@example.com"

	// EnvPrefix prefixes every environment override, e.g. IHIC_SOURCE.
	EnvPrefix = "IHIC"
	// EnvConfigPath names an extra directory searched for .ihic.yaml.
	EnvConfigPath = "IHIC_CONFIG_PATH"
)

// Config is resolved once at startup and passed by value afterwards.
type Config struct {
	Source  string `json:"source"`
	Output  string `json:"output"`
	Landing string `json:"landing"`
	Contact string `json:"contact"`

	// File is the config file that was read, if any.
	File string `json:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:  DefaultSource,
		Output:  DefaultOutput,
		Landing: DefaultLanding,
		Contact: DefaultContact,
	}
}

// Load resolves the configuration from defaults, an optional .ihic.yaml and
// IHIC_* environment variables, in increasing precedence. When file is set it
// must exist; otherwise a missing config file is not an error.
func Load(file string) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("source", d.Source)
	v.SetDefault("output", d.Output)
	v.SetDefault("landing", d.Landing)
	v.SetDefault("contact", d.Contact)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		expanded, err := homedir.Expand(file)
		if err != nil {
			return Config{}, fmt.Errorf("config: expand %s: %w", file, err)
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName(".ihic") // .yaml is implicit
		if override := os.Getenv(EnvConfigPath); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := Config{
		Source:  v.GetString("source"),
		Output:  v.GetString("output"),
		Landing: v.GetString("landing"),
		Contact: strings.TrimSpace(v.GetString("contact")),
		File:    v.ConfigFileUsed(),
	}
	for _, p := range []*string{&cfg.Source, &cfg.Output, &cfg.Landing} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return Config{}, fmt.Errorf("config: expand %s: %w", *p, err)
		}
		*p = expanded
	}
	return cfg, cfg.Validate()
}

// BasePath is the output directory, so a Config can root the page store.
func (c Config) BasePath() string {
	return c.Output
}

// Validate reports settings the generator cannot run without.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Source) == "":
		return errors.New("config: source path required")
	case strings.TrimSpace(c.Output) == "":
		return errors.New("config: output directory required")
	case c.Contact == "":
		return errors.New("config: contact address required")
	}
	return nil
}

// LoadDotEnv loads environment variables from .env style files without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}
