package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Tilde prefix", "~/projects/web", filepath.Join("/home/u", "projects", "web")},
		{"Absolute path", "/srv/code", "/srv/code"},
		{"Bare tilde", "~", "~"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandHome(tt.path, "/home/u"); got != tt.expected {
				t.Errorf("expandHome(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Exclude != "node_modules,dist,build" {
		t.Errorf("Exclude = %q, want the built-in default", cfg.Exclude)
	}
	if cfg.DefaultPath != "" {
		t.Errorf("DefaultPath = %q, want empty", cfg.DefaultPath)
	}
	if len(cfg.Extensions) != 0 {
		t.Errorf("Extensions = %v, want none", cfg.Extensions)
	}
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "zhscan")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "default_path = \"~/web\"\nexclude = \"vendor\"\nextensions = [\"vue\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultPath != filepath.Join(home, "web") {
		t.Errorf("DefaultPath = %q, want %q", cfg.DefaultPath, filepath.Join(home, "web"))
	}
	if cfg.Exclude != "vendor" {
		t.Errorf("Exclude = %q, want %q", cfg.Exclude, "vendor")
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != "vue" {
		t.Errorf("Extensions = %v, want [vue]", cfg.Extensions)
	}
}
