package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration can drive an organize run. It reports
// the first problem it finds so the user sees one actionable error at a time.
func (c *Config) Validate() error {
	if err := validateCategoryName(c.Organize.OtherCategory); err != nil {
		return fmt.Errorf("organize.other_category: %w", err)
	}
	return c.validateCategories()
}

func (c *Config) validateCategories() error {
	if len(c.Categories) == 0 {
		return errors.New("categories: at least one category is required")
	}

	seenNames := make(map[string]struct{}, len(c.Categories))
	for i, category := range c.Categories {
		if err := validateCategoryName(category.Name); err != nil {
			return fmt.Errorf("categories[%d].name: %w", i, err)
		}
		if _, ok := seenNames[category.Name]; ok {
			return fmt.Errorf("categories[%d].name: duplicate category %q", i, category.Name)
		}
		seenNames[category.Name] = struct{}{}

		if len(category.Extensions) == 0 {
			return fmt.Errorf("categories[%d] (%s): at least one extension is required", i, category.Name)
		}
		seenExts := make(map[string]struct{}, len(category.Extensions))
		for _, ext := range category.Extensions {
			if ext == "" {
				return fmt.Errorf("categories[%d] (%s): extensions must not be blank", i, category.Name)
			}
			if strings.ContainsAny(ext, `./\`) {
				return fmt.Errorf("categories[%d] (%s): extension %q must not contain dots or path separators", i, category.Name, ext)
			}
			if _, ok := seenExts[ext]; ok {
				return fmt.Errorf("categories[%d] (%s): duplicate extension %q", i, category.Name, ext)
			}
			seenExts[ext] = struct{}{}
		}
	}

	// An extension may appear in several categories; the first category in
	// declaration order claims it.
	return nil
}

// validateCategoryName rejects names that cannot serve as a folder directly
// under the organized directory.
func validateCategoryName(name string) error {
	if name == "" {
		return errors.New("must not be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%q is not a usable folder name", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%q must not contain path separators", name)
	}
	return nil
}
