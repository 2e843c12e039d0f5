package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganize()
	c.normalizeCategories()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(c.Paths.StateDir, "logs")
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganize() {
	c.Organize.OtherCategory = strings.TrimSpace(c.Organize.OtherCategory)
	if c.Organize.OtherCategory == "" {
		c.Organize.OtherCategory = defaultOtherCategory
	}
}

// normalizeCategories canonicalizes names and extensions. Extensions are
// matched case-insensitively and stored without the leading dot; blank
// entries survive normalization so validation can point at them.
func (c *Config) normalizeCategories() {
	for i, category := range c.Categories {
		category.Name = strings.TrimSpace(category.Name)
		for j, ext := range category.Extensions {
			ext = strings.ToLower(strings.TrimSpace(ext))
			category.Extensions[j] = strings.TrimPrefix(ext, ".")
		}
		c.Categories[i] = category
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "json", "console":
	default:
		c.Logging.Format = defaultLogFormat
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
