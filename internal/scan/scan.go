// Package scan discovers the regular files an organize run will consider.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"cubby/internal/classify"
)

// FileEntry is an immutable snapshot of one regular file found during a
// scan.
type FileEntry struct {
	Path    string // absolute path
	Name    string // base name
	Ext     string // lower-cased extension without the dot
	Size    int64
	ModTime time.Time
}

// Scan lists the regular files under root in lexical order so repeated runs
// see an identical sequence. With recursive set it descends into
// subdirectories, except those named in skipDirs; passing the category
// folder names there keeps already-organized files out of the scan.
// Symlinks and other non-regular files are left alone.
func Scan(root string, recursive bool, skipDirs []string) ([]FileEntry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scan root: %w", err)
	}

	skip := make(map[string]struct{}, len(skipDirs))
	for _, name := range skipDirs {
		skip[name] = struct{}{}
	}

	var entries []FileEntry
	if err := walk(abs, recursive, skip, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func walk(dir string, recursive bool, skip map[string]struct{}, out *[]FileEntry) error {
	items, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	for _, item := range items {
		name := item.Name()
		if item.IsDir() {
			if !recursive {
				continue
			}
			if _, skipped := skip[name]; skipped {
				continue
			}
			if err := walk(filepath.Join(dir, name), recursive, skip, out); err != nil {
				return err
			}
			continue
		}
		if !item.Type().IsRegular() {
			continue
		}

		info, err := item.Info()
		if err != nil {
			// The file vanished between the directory read and the stat;
			// there is nothing left to move.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("stat %s: %w", filepath.Join(dir, name), err)
		}

		*out = append(*out, FileEntry{
			Path:    filepath.Join(dir, name),
			Name:    name,
			Ext:     classify.Ext(name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return nil
}
