package testsupport

import (
	"path/filepath"
	"testing"

	"cubby/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It starts from repository defaults and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithCategories replaces the category table on the test config.
func WithCategories(categories ...config.Category) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Categories = categories
	}
}

// WithRemoveEmptyDirs toggles category folder cleanup after undo.
func WithRemoveEmptyDirs(enabled bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.RemoveEmptyDirs = enabled
	}
}

// WithOtherCategory renames the fallback bucket on the test config.
func WithOtherCategory(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.OtherCategory = name
	}
}
