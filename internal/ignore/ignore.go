// Package ignore reads per-directory ignore files and matches file names
// against their glob patterns.
package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileName is the per-directory ignore file cubby reads.
const FileName = ".cubbyignore"

const sampleIgnore = `# cubby ignore file
# One glob pattern per line, matched against file names in this directory.
# Blank lines and lines starting with # are skipped.

# Ignore a specific file
important_file.txt

# Ignore by extension
*.tmp
*.log
*.cache

# Ignore files starting with a prefix
draft_*

# Ignore files containing a word
*backup*
`

// Set is a compiled collection of glob patterns matched against base file
// names. The ignore file itself is always a member, so it never organizes
// itself away.
type Set struct {
	patterns []string
}

// New compiles patterns into a Set. Patterns use path.Match syntax and are
// checked up front; one malformed pattern fails the whole set so a typo is
// caught before any file moves.
func New(patterns []string) (*Set, error) {
	compiled := make([]string, 0, len(patterns)+1)
	compiled = append(compiled, FileName)
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		if _, err := path.Match(pattern, "probe"); err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, pattern)
	}
	return &Set{patterns: compiled}, nil
}

// Load reads dir's ignore file. A missing file yields a set holding only the
// implicit self-ignore entry.
func Load(dir string) (*Set, error) {
	file, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(nil)
		}
		return nil, fmt.Errorf("open %s: %w", FileName, err)
	}
	defer file.Close()

	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		patterns = append(patterns, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}

	set, err := New(patterns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FileName, err)
	}
	return set, nil
}

// Match reports whether the base name matches any pattern in the set.
func (s *Set) Match(name string) bool {
	for _, pattern := range s.patterns {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Patterns returns the compiled patterns, implicit self-ignore included.
func (s *Set) Patterns() []string {
	return append([]string(nil), s.patterns...)
}

// CreateSample writes a commented starter ignore file to path.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleIgnore), 0o644); err != nil {
		return fmt.Errorf("write sample ignore file: %w", err)
	}
	return nil
}
