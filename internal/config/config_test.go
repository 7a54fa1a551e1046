package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogDir != "." {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
	if cfg.Pattern != "*.log" {
		t.Errorf("Pattern = %q", cfg.Pattern)
	}
	if cfg.IndexTitle != "IRC logs" {
		t.Errorf("IndexTitle = %q", cfg.IndexTitle)
	}
	if cfg.Addr != "localhost:8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".config", "irclogview")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := `log_dir = "~/irclogs"
pattern = "*.log.gz"
style = "xhtml"
dircproxy = true
`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "irclogs"); cfg.LogDir != want {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, want)
	}
	if cfg.Pattern != "*.log.gz" {
		t.Errorf("Pattern = %q", cfg.Pattern)
	}
	if cfg.Style != "xhtml" {
		t.Errorf("Style = %q", cfg.Style)
	}
	if !cfg.Dircproxy {
		t.Error("Dircproxy not set")
	}
	// Unset keys keep their defaults.
	if cfg.Addr != "localhost:8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
}

func TestLoadBadToml(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".config", "irclogview")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("log_dir = ["), 0o644)

	if _, err := Load(); err == nil {
		t.Error("malformed config accepted")
	}
}
