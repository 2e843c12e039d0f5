// Package collision allocates destination paths that never overwrite
// anything.
package collision

import (
	"fmt"
	"path/filepath"
	"strings"

	"cubby/internal/fileutil"
)

// maxAttempts bounds the suffix probe; exhausting it reports an error rather
// than ever reusing a taken path.
const maxAttempts = 10000

// Resolver hands out destination paths that collide neither with existing
// files nor with destinations allocated earlier for the same batch.
type Resolver struct {
	exists  func(string) bool
	claimed map[string]struct{}
}

// NewResolver builds a resolver backed by the given existence check. A nil
// check consults the local filesystem.
func NewResolver(exists func(string) bool) *Resolver {
	if exists == nil {
		exists = fileutil.PathExists
	}
	return &Resolver{exists: exists, claimed: make(map[string]struct{})}
}

// Claim marks path as taken without probing for alternatives.
func (r *Resolver) Claim(path string) {
	r.claimed[path] = struct{}{}
}

// Resolve returns desired when it is free, otherwise the first
// "stem (N).ext" variant that is. The result is claimed before it is
// returned, so callers may resolve a whole batch up front.
func (r *Resolver) Resolve(desired string) (string, error) {
	if !r.taken(desired) {
		r.claimed[desired] = struct{}{}
		return desired, nil
	}

	dir := filepath.Dir(desired)
	stem, ext := splitName(filepath.Base(desired))
	for n := 1; n <= maxAttempts; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if r.taken(candidate) {
			continue
		}
		r.claimed[candidate] = struct{}{}
		return candidate, nil
	}
	return "", fmt.Errorf("exhausted rename candidates for %s", desired)
}

func (r *Resolver) taken(path string) bool {
	if _, claimed := r.claimed[path]; claimed {
		return true
	}
	return r.exists(path)
}

// splitName separates a file name into stem and extension. Names that are
// all extension, like ".bashrc", keep the dot in the stem so the numeric
// suffix lands at the end where users expect it.
func splitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}
