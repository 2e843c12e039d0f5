package inspect

import (
	"io"
	"os"
	"sort"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cubby/internal/classify"
	"cubby/internal/scan"
)

// sniffLimit bounds how much of an extensionless file is read for content
// detection. Magic numbers sit well within the first few KiB.
const sniffLimit = 8192

// CategoryCount aggregates the files one category would receive.
type CategoryCount struct {
	Name  string
	Files int
	Bytes int64
}

// Suggestion describes an extension no category claims, with a ready-made
// name for a config table entry.
type Suggestion struct {
	Extension string
	Files     int
	Category  string
}

// Sniffed is a content-detection result for a file without an extension.
type Sniffed struct {
	Name string
	Kind string // detected extension, or "unknown"
	MIME string
}

// Report is a read-only preview of what organizing a directory would
// involve.
type Report struct {
	Directory     string
	TotalFiles    int
	TotalBytes    int64
	Categories    []CategoryCount
	Uncategorized []Suggestion
	Extensionless []Sniffed
}

// Build aggregates scanned entries against the category table. Nothing is
// moved; extensionless files are content-sniffed so the report can still
// say what they hold.
func Build(directory string, entries []scan.FileEntry, table *classify.Table) *Report {
	report := &Report{Directory: directory}

	counts := make(map[string]*CategoryCount)
	unclaimed := make(map[string]int)

	for _, entry := range entries {
		report.TotalFiles++
		report.TotalBytes += entry.Size

		name, claimed := table.Lookup(entry.Ext)
		count, ok := counts[name]
		if !ok {
			count = &CategoryCount{Name: name}
			counts[name] = count
		}
		count.Files++
		count.Bytes += entry.Size

		if claimed {
			continue
		}
		if entry.Ext == "" {
			report.Extensionless = append(report.Extensionless, sniff(entry))
			continue
		}
		unclaimed[entry.Ext]++
	}

	// Category rows follow table order; empty categories are left out.
	for _, name := range table.Names() {
		if count, ok := counts[name]; ok {
			report.Categories = append(report.Categories, *count)
		}
	}

	titler := cases.Title(language.Und)
	for ext, files := range unclaimed {
		report.Uncategorized = append(report.Uncategorized, Suggestion{
			Extension: ext,
			Files:     files,
			Category:  titler.String(ext),
		})
	}
	sort.Slice(report.Uncategorized, func(i, j int) bool {
		a, b := report.Uncategorized[i], report.Uncategorized[j]
		if a.Files != b.Files {
			return a.Files > b.Files
		}
		return a.Extension < b.Extension
	})

	return report
}

// sniff reads the head of an extensionless file and matches it against known
// magic numbers. Unreadable files report as unknown rather than failing the
// whole inspection.
func sniff(entry scan.FileEntry) Sniffed {
	result := Sniffed{Name: entry.Name, Kind: "unknown"}

	file, err := os.Open(entry.Path)
	if err != nil {
		return result
	}
	defer file.Close()

	buffer := make([]byte, sniffLimit)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return result
	}

	kind, err := filetype.Match(buffer[:n])
	if err != nil || kind == types.Unknown {
		return result
	}

	result.Kind = kind.Extension
	result.MIME = kind.MIME.Value
	return result
}
