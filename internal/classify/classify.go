package classify

import "strings"

// Matcher reports whether a file name is excluded from organization.
type Matcher interface {
	Match(name string) bool
}

// Result is the outcome of classifying a single file name.
type Result struct {
	Category string
	Ignored  bool
}

// Classifier assigns file names to categories. It is a pure lookup over the
// table and ignore patterns supplied at construction and never touches the
// filesystem.
type Classifier struct {
	table   *Table
	ignored Matcher
}

// New builds a classifier. A nil matcher means nothing is ignored.
func New(table *Table, ignored Matcher) *Classifier {
	return &Classifier{table: table, ignored: ignored}
}

// Classify resolves name to a category. Ignore patterns win over the
// extension lookup, so an ignored file never reports a category.
func (c *Classifier) Classify(name string) Result {
	if c.ignored != nil && c.ignored.Match(name) {
		return Result{Ignored: true}
	}
	category, _ := c.table.Lookup(Ext(name))
	return Result{Category: category}
}

// Ext returns the lower-cased extension of name without the leading dot.
// Names without a dot yield the empty extension; dotfiles like ".gitignore"
// yield everything after the dot.
func Ext(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
