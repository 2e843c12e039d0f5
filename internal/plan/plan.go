package plan

import (
	"fmt"
	"path/filepath"

	"cubby/internal/classify"
	"cubby/internal/collision"
	"cubby/internal/scan"
)

// Entry is a single proposed move.
type Entry struct {
	Source      string
	Destination string
	Category    string
	Size        int64
}

// Skipped records a scanned file excluded from the plan and why.
type Skipped struct {
	Path   string
	Reason string
}

// Plan is an ordered batch of proposed moves for one directory. Building a
// plan mutates nothing; the filesystem is only consulted through the
// resolver's existence checks.
type Plan struct {
	Directory string
	Entries   []Entry
	Skipped   []Skipped
}

// TotalBytes sums the sizes of all planned moves.
func (p *Plan) TotalBytes() int64 {
	var total int64
	for _, entry := range p.Entries {
		total += entry.Size
	}
	return total
}

// Build classifies each scanned file and assigns it a collision-free
// destination under targetDir/<category>/. Entries keep scan order so
// repeated dry runs over an unchanged directory render identically.
func Build(entries []scan.FileEntry, classifier *classify.Classifier, targetDir string) (*Plan, error) {
	return BuildWithResolver(entries, classifier, targetDir, collision.NewResolver(nil))
}

// BuildWithResolver is Build with an injected collision resolver.
func BuildWithResolver(entries []scan.FileEntry, classifier *classify.Classifier, targetDir string, resolver *collision.Resolver) (*Plan, error) {
	abs, err := filepath.Abs(targetDir)
	if err != nil {
		return nil, fmt.Errorf("resolve target directory: %w", err)
	}

	p := &Plan{Directory: abs}
	for _, entry := range entries {
		result := classifier.Classify(entry.Name)
		if result.Ignored {
			p.Skipped = append(p.Skipped, Skipped{Path: entry.Path, Reason: "matches ignore pattern"})
			continue
		}

		desired := filepath.Join(abs, result.Category, entry.Name)
		if entry.Path == desired {
			// Already sitting in its category folder; renaming it to a
			// suffixed variant would shuffle files that are in place.
			p.Skipped = append(p.Skipped, Skipped{Path: entry.Path, Reason: "already organized"})
			continue
		}

		destination, err := resolver.Resolve(desired)
		if err != nil {
			return nil, fmt.Errorf("resolve destination for %s: %w", entry.Path, err)
		}
		p.Entries = append(p.Entries, Entry{
			Source:      entry.Path,
			Destination: destination,
			Category:    result.Category,
			Size:        entry.Size,
		})
	}
	return p, nil
}
