// Package config loads the tagwriter command's configuration file.
//
//	closing_slash = false
//	encoding = "utf-8"
//	warnings = "text"
//
//	[serve]
//	addr = ":8080"
//	dir = "pages"
//
//	[render]
//	jobs = 4
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Warning modes.
const (
	WarningsText = "text"
	WarningsLog  = "log"
	WarningsOff  = "off"
)

// Config holds the command's settings.
type Config struct {
	// Default for scripts which don't set closing-slash themselves.
	ClosingSlash bool `toml:"closing_slash"`

	// Default output encoding for scripts which don't set one.
	Encoding string `toml:"encoding"`

	// How diagnostics are shown: "text" writes one line per diagnostic to
	// stderr, "log" uses structured logging and "off" drops them.
	Warnings string `toml:"warnings"`

	Serve  Serve  `toml:"serve"`
	Render Render `toml:"render"`
}

// Serve configures the serve command.
type Serve struct {
	Addr string `toml:"addr"`
	Dir  string `toml:"dir"`
}

// Render configures the run command.
type Render struct {
	// Maximum number of scripts rendered at once.
	Jobs int `toml:"jobs"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ClosingSlash: true,
		Encoding:     "utf-8",
		Warnings:     WarningsText,
		Serve: Serve{
			Addr: ":8080",
			Dir:  ".",
		},
		Render: Render{
			Jobs: runtime.GOMAXPROCS(0),
		},
	}
}

// Load reads the TOML file at path on top of Default().
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the command can't use.
func (c Config) Validate() error {
	switch c.Warnings {
	case WarningsText, WarningsLog, WarningsOff:
	default:
		return fmt.Errorf("invalid warnings mode %q, expected %s, %s or %s",
			c.Warnings, WarningsText, WarningsLog, WarningsOff)
	}
	if c.Render.Jobs < 1 {
		return fmt.Errorf("render.jobs must be at least 1, got %d", c.Render.Jobs)
	}
	if strings.TrimSpace(c.Serve.Dir) == "" {
		return fmt.Errorf("serve.dir must not be empty")
	}
	return nil
}
