package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// DefaultPath seeds the scan directory input when no argument is
	// given; empty means the current working directory.
	DefaultPath string `toml:"default_path"`

	// Exclude is the default raw comma-separated exclusion list.
	Exclude string `toml:"exclude"`

	// Extensions are extra file extensions scanned on top of the
	// built-in js/jsx/ts/tsx set.
	Extensions []string `toml:"extensions"`
}

// Path is where the optional config file lives.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "zhscan", "config.toml"), nil
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Exclude: "node_modules,dist,build",
	}

	cfgPath := filepath.Join(home, ".config", "zhscan", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.DefaultPath = expandHome(cfg.DefaultPath, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
