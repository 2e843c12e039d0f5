package config_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cubby/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected no config file, got one at %s", path)
	}
	wantPath := filepath.Join(home, ".config", "cubby", "config.toml")
	if path != wantPath {
		t.Fatalf("resolved path = %q, want %q", path, wantPath)
	}

	wantState := filepath.Join(home, ".local", "share", "cubby")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("StateDir = %q, want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Paths.LogDir != filepath.Join(wantState, "logs") {
		t.Fatalf("LogDir = %q, want state-relative logs dir", cfg.Paths.LogDir)
	}
	if cfg.Organize.OtherCategory != "Other" {
		t.Fatalf("OtherCategory = %q", cfg.Organize.OtherCategory)
	}
	if !cfg.Organize.RemoveEmptyDirs {
		t.Fatal("RemoveEmptyDirs should default to true")
	}
	if len(cfg.Categories) == 0 || cfg.Categories[0].Name != "Images" {
		t.Fatalf("default categories missing or reordered: %+v", cfg.Categories)
	}
}

func TestLoadCustomConfig(t *testing.T) {
	dir := t.TempDir()
	state := filepath.Join(dir, "state")
	configPath := filepath.Join(dir, "config.toml")

	payload := fmt.Sprintf(`
[paths]
state_dir = %q

[organize]
other_category = "Misc"
remove_empty_dirs = false

[logging]
format = "JSON"
level = "DEBUG"

[[categories]]
name = "  Scans "
extensions = [".PDF", "Tiff"]
`, state)
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, path, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || path != configPath {
		t.Fatalf("expected config at %s to load, got path=%q exists=%v", configPath, path, exists)
	}

	if cfg.Paths.StateDir != state {
		t.Fatalf("StateDir = %q, want %q", cfg.Paths.StateDir, state)
	}
	if cfg.Organize.OtherCategory != "Misc" {
		t.Fatalf("OtherCategory = %q", cfg.Organize.OtherCategory)
	}
	if cfg.Organize.RemoveEmptyDirs {
		t.Fatal("RemoveEmptyDirs should honor the file value")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}

	// A user table replaces the built-in one wholesale.
	if len(cfg.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(cfg.Categories))
	}
	category := cfg.Categories[0]
	if category.Name != "Scans" {
		t.Fatalf("category name not trimmed: %q", category.Name)
	}
	if category.Extensions[0] != "pdf" || category.Extensions[1] != "tiff" {
		t.Fatalf("extensions not normalized: %v", category.Extensions)
	}
}

func TestLoadKeepsDefaultCategoriesWhenFileOmitsThem(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	payload := "[organize]\nother_category = \"Leftovers\"\n"
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Organize.OtherCategory != "Leftovers" {
		t.Fatalf("OtherCategory = %q", cfg.Organize.OtherCategory)
	}
	if len(cfg.Categories) != len(config.DefaultCategories()) {
		t.Fatalf("expected default category table, got %d entries", len(cfg.Categories))
	}
}

func TestLoadRejectsMalformedCategories(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantErr string
	}{
		{
			name:    "separator in name",
			payload: "[[categories]]\nname = \"a/b\"\nextensions = [\"txt\"]\n",
			wantErr: "path separators",
		},
		{
			name:    "no extensions",
			payload: "[[categories]]\nname = \"Docs\"\nextensions = []\n",
			wantErr: "at least one extension",
		},
		{
			name:    "blank extension",
			payload: "[[categories]]\nname = \"Docs\"\nextensions = [\" \"]\n",
			wantErr: "must not be blank",
		},
		{
			name:    "duplicate extension",
			payload: "[[categories]]\nname = \"Docs\"\nextensions = [\"txt\", \"TXT\"]\n",
			wantErr: "duplicate extension",
		},
		{
			name:    "duplicate category",
			payload: "[[categories]]\nname = \"Docs\"\nextensions = [\"txt\"]\n\n[[categories]]\nname = \"Docs\"\nextensions = [\"pdf\"]\n",
			wantErr: "duplicate category",
		},
		{
			name:    "dotted extension after trim",
			payload: "[[categories]]\nname = \"Docs\"\nextensions = [\"tar.gz\"]\n",
			wantErr: "must not contain dots",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte(tc.payload), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(configPath)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestCreateSampleRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	samplePath := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(samplePath); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(samplePath)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	if len(cfg.Categories) != len(config.DefaultCategories()) {
		t.Fatalf("sample categories = %d, want the default table", len(cfg.Categories))
	}
	if cfg.Organize.OtherCategory != "Other" {
		t.Fatalf("sample OtherCategory = %q", cfg.Organize.OtherCategory)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~/downloads")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "downloads") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
