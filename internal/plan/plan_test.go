package plan_test

import (
	"path/filepath"
	"testing"

	"cubby/internal/classify"
	"cubby/internal/collision"
	"cubby/internal/plan"
	"cubby/internal/scan"
)

func testClassifier(t *testing.T, ignored ...string) *classify.Classifier {
	t.Helper()
	table := classify.NewTable([]classify.Category{
		{Name: "Images", Extensions: []string{"jpg"}},
		{Name: "Documents", Extensions: []string{"txt", "pdf"}},
	}, "Other")

	set := make(map[string]struct{}, len(ignored))
	for _, name := range ignored {
		set[name] = struct{}{}
	}
	return classify.New(table, matcherFunc(func(name string) bool {
		_, ok := set[name]
		return ok
	}))
}

func entriesFor(dir string, names ...string) []scan.FileEntry {
	entries := make([]scan.FileEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, scan.FileEntry{
			Path: filepath.Join(dir, name),
			Name: filepath.Base(name),
			Ext:  classify.Ext(name),
			Size: 10,
		})
	}
	return entries
}

func freeResolver() *collision.Resolver {
	return collision.NewResolver(func(string) bool { return false })
}

func TestBuildAssignsCategories(t *testing.T) {
	dir := "/target"
	entries := entriesFor(dir, "photo.jpg", "notes.txt", "blob.xyz")

	p, err := plan.BuildWithResolver(entries, testClassifier(t), dir, freeResolver())
	if err != nil {
		t.Fatalf("BuildWithResolver: %v", err)
	}

	if p.Directory != dir {
		t.Fatalf("Directory = %q", p.Directory)
	}
	want := []plan.Entry{
		{Source: "/target/photo.jpg", Destination: "/target/Images/photo.jpg", Category: "Images", Size: 10},
		{Source: "/target/notes.txt", Destination: "/target/Documents/notes.txt", Category: "Documents", Size: 10},
		{Source: "/target/blob.xyz", Destination: "/target/Other/blob.xyz", Category: "Other", Size: 10},
	}
	if len(p.Entries) != len(want) {
		t.Fatalf("entries = %+v", p.Entries)
	}
	for i := range want {
		if p.Entries[i] != want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, p.Entries[i], want[i])
		}
	}
	if p.TotalBytes() != 30 {
		t.Fatalf("TotalBytes = %d", p.TotalBytes())
	}
}

func TestBuildSkipsIgnoredFiles(t *testing.T) {
	dir := "/target"
	entries := entriesFor(dir, "photo.jpg", "keep.txt")

	p, err := plan.BuildWithResolver(entries, testClassifier(t, "keep.txt"), dir, freeResolver())
	if err != nil {
		t.Fatalf("BuildWithResolver: %v", err)
	}

	if len(p.Entries) != 1 || p.Entries[0].Source != "/target/photo.jpg" {
		t.Fatalf("entries = %+v", p.Entries)
	}
	if len(p.Skipped) != 1 || p.Skipped[0].Path != "/target/keep.txt" {
		t.Fatalf("skipped = %+v", p.Skipped)
	}
	if p.Skipped[0].Reason != "matches ignore pattern" {
		t.Fatalf("reason = %q", p.Skipped[0].Reason)
	}
}

func TestBuildResolvesDuplicateNames(t *testing.T) {
	dir := "/target"
	entries := []scan.FileEntry{
		{Path: "/target/report.txt", Name: "report.txt", Ext: "txt", Size: 1},
		{Path: "/target/nested/report.txt", Name: "report.txt", Ext: "txt", Size: 2},
	}

	p, err := plan.BuildWithResolver(entries, testClassifier(t), dir, freeResolver())
	if err != nil {
		t.Fatalf("BuildWithResolver: %v", err)
	}

	if p.Entries[0].Destination != "/target/Documents/report.txt" {
		t.Fatalf("first destination = %q", p.Entries[0].Destination)
	}
	if p.Entries[1].Destination != "/target/Documents/report (1).txt" {
		t.Fatalf("second destination = %q", p.Entries[1].Destination)
	}
}

func TestBuildSkipsFilesAlreadyInPlace(t *testing.T) {
	dir := "/target"
	entries := []scan.FileEntry{
		{Path: "/target/Documents/report.txt", Name: "report.txt", Ext: "txt", Size: 1},
	}

	p, err := plan.BuildWithResolver(entries, testClassifier(t), dir, freeResolver())
	if err != nil {
		t.Fatalf("BuildWithResolver: %v", err)
	}

	if len(p.Entries) != 0 {
		t.Fatalf("entries = %+v, want none", p.Entries)
	}
	if len(p.Skipped) != 1 || p.Skipped[0].Reason != "already organized" {
		t.Fatalf("skipped = %+v", p.Skipped)
	}
}

type matcherFunc func(string) bool

func (f matcherFunc) Match(name string) bool { return f(name) }
