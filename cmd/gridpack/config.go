package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds CLI defaults loaded from a TOML file. Explicit command-line
// flags always override it.
type config struct {
	Solver struct {
		Workers  int  `toml:"workers"`
		BestOnly bool `toml:"best_only"`
	} `toml:"solver"`
}

// defaultConfigPath returns ~/.gridpack.toml.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return filepath.Join(home, ".gridpack.toml")
}

// loadConfig reads the TOML config at path, or at the default location when
// path is empty. A missing file yields the zero config; only an explicitly
// requested file must exist.
func loadConfig(path string) (config, error) {
	var cfg config

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return config{}, nil
		}

		return config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}
