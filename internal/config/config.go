package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the file-level defaults; command flags override them.
type Config struct {
	LogDir      string `toml:"log_dir"`
	Pattern     string `toml:"pattern"`
	Style       string `toml:"style"`
	Dialect     string `toml:"dialect"`
	TitlePrefix string `toml:"title_prefix"`
	IndexTitle  string `toml:"index_title"`
	Addr        string `toml:"addr"`
	Dircproxy   bool   `toml:"dircproxy"`
	Searchbox   bool   `toml:"searchbox"`
}

// Load reads ~/.config/irclogview/config.toml when present, on top of the
// built-in defaults.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogDir:      ".",
		Pattern:     "*.log",
		IndexTitle:  "IRC logs",
		TitlePrefix: "IRC logs for ",
		Addr:        "localhost:8080",
	}

	cfgPath := filepath.Join(home, ".config", "irclogview", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.LogDir = expandHome(cfg.LogDir, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
