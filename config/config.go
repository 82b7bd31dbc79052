// Package config holds the runtime configuration for the course planner.
// Settings layer in increasing precedence: built-in defaults, an optional
// TOML config file, environment variables, command-line flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Reload modes for a repeated load action. Merge preserves the historical
// behavior of inserting into the already-populated indexes; Reset starts
// from a fresh catalog on every load.
const (
	ReloadMerge = "merge"
	ReloadReset = "reset"
)

const defaultFile = "CS 300 ABCU_Advising_Program_Input.csv"

type Config struct {
	File        string `toml:"file"`         // input file used when the load prompt is left blank
	ReloadMode  string `toml:"reload_mode"`  // merge | reset
	DatabaseURL string `toml:"database_url"` // Postgres DSN for catalog export; empty disables export
	NoColor     bool   `toml:"no_color"`     // disable colored terminal output
	ShowVersion bool   `toml:"-"`            // print version and exit (flag only)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		File:       defaultFile,
		ReloadMode: ReloadMerge,
	}
}

// Parse builds the configuration from the config file, environment, and
// command-line flags.
func Parse() (*Config, error) {
	cfg := Default()

	path := envStr("COURSEPLAN_CONFIG", "courseplan.toml")
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}

	flag.StringVar(&cfg.File, "file", envStr("COURSEPLAN_FILE", cfg.File), "default course data file")
	flag.StringVar(&cfg.ReloadMode, "reload-mode", envStr("COURSEPLAN_RELOAD_MODE", cfg.ReloadMode), "behavior of repeated loads: merge or reset")
	flag.StringVar(&cfg.DatabaseURL, "database-url", envStr("COURSEPLAN_DATABASE_URL", cfg.DatabaseURL), "Postgres DSN for catalog export (empty disables export)")
	flag.BoolVar(&cfg.NoColor, "no-color", envBool("COURSEPLAN_NO_COLOR", cfg.NoColor), "disable colored output")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile merges settings from a TOML file into cfg. A missing file is
// not an error — the file is optional.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.ReloadMode {
	case ReloadMerge, ReloadReset:
		return nil
	default:
		return fmt.Errorf("invalid reload mode %q (want %s or %s)", c.ReloadMode, ReloadMerge, ReloadReset)
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
