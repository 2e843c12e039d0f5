package classify

import (
	"strings"

	"cubby/internal/config"
)

// Category pairs a destination folder with the extensions it claims.
type Category struct {
	Name       string
	Extensions []string
}

// Table resolves file extensions to category names. Categories keep their
// declaration order, the first category claiming an extension wins, and
// extensions no category claims resolve to the fallback bucket.
type Table struct {
	categories []Category
	fallback   string
	byExt      map[string]string
	names      map[string]struct{}
}

// NewTable builds a lookup table. An empty fallback name defaults to "Other".
func NewTable(categories []Category, fallback string) *Table {
	fallback = strings.TrimSpace(fallback)
	if fallback == "" {
		fallback = "Other"
	}

	t := &Table{
		categories: categories,
		fallback:   fallback,
		byExt:      make(map[string]string),
		names:      make(map[string]struct{}, len(categories)+1),
	}
	for _, category := range categories {
		t.names[category.Name] = struct{}{}
		for _, ext := range category.Extensions {
			if _, claimed := t.byExt[ext]; claimed {
				continue
			}
			t.byExt[ext] = category.Name
		}
	}
	t.names[fallback] = struct{}{}
	return t
}

// FromConfig builds a table from the validated configuration.
func FromConfig(cfg *config.Config) *Table {
	categories := make([]Category, 0, len(cfg.Categories))
	for _, category := range cfg.Categories {
		categories = append(categories, Category{
			Name:       category.Name,
			Extensions: append([]string(nil), category.Extensions...),
		})
	}
	return NewTable(categories, cfg.Organize.OtherCategory)
}

// Lookup returns the category claiming ext and whether any category did.
// Misses resolve to the fallback bucket.
func (t *Table) Lookup(ext string) (string, bool) {
	if name, ok := t.byExt[strings.ToLower(ext)]; ok {
		return name, true
	}
	return t.fallback, false
}

// Fallback returns the bucket name for unclaimed extensions.
func (t *Table) Fallback() string {
	return t.fallback
}

// Names returns every destination folder the table can produce, fallback
// included, in declaration order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.categories)+1)
	fallbackListed := false
	for _, category := range t.categories {
		names = append(names, category.Name)
		if category.Name == t.fallback {
			fallbackListed = true
		}
	}
	if !fallbackListed {
		names = append(names, t.fallback)
	}
	return names
}

// Contains reports whether name is one of the table's destination folders.
func (t *Table) Contains(name string) bool {
	_, ok := t.names[name]
	return ok
}
