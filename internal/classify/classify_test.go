package classify_test

import (
	"testing"

	"cubby/internal/classify"
	"cubby/internal/config"
)

func testTable() *classify.Table {
	return classify.NewTable([]classify.Category{
		{Name: "Images", Extensions: []string{"jpg", "png"}},
		{Name: "Documents", Extensions: []string{"pdf", "txt"}},
		{Name: "Scans", Extensions: []string{"pdf"}},
	}, "Other")
}

func TestLookupFirstMatchWins(t *testing.T) {
	table := testTable()

	name, claimed := table.Lookup("pdf")
	if !claimed || name != "Documents" {
		t.Fatalf("Lookup(pdf) = %q, %v; want Documents claimed", name, claimed)
	}
}

func TestLookupFallsBack(t *testing.T) {
	table := testTable()

	name, claimed := table.Lookup("xyz")
	if claimed || name != "Other" {
		t.Fatalf("Lookup(xyz) = %q, %v; want Other unclaimed", name, claimed)
	}
	if name, _ := table.Lookup(""); name != "Other" {
		t.Fatalf("empty extension should fall back, got %q", name)
	}
}

func TestTableNamesIncludeFallback(t *testing.T) {
	table := testTable()

	names := table.Names()
	want := []string{"Images", "Documents", "Scans", "Other"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	if !table.Contains("Other") || table.Contains("Nope") {
		t.Fatal("Contains should cover the fallback and nothing else")
	}
}

func TestTableNamesSkipDuplicateFallback(t *testing.T) {
	table := classify.NewTable([]classify.Category{
		{Name: "Other", Extensions: []string{"bin"}},
	}, "Other")
	if names := table.Names(); len(names) != 1 {
		t.Fatalf("Names() = %v, want a single entry", names)
	}
}

func TestClassifyUsesIgnorePatternsFirst(t *testing.T) {
	classifier := classify.New(testTable(), matcherFunc(func(name string) bool {
		return name == "keep.txt"
	}))

	if result := classifier.Classify("keep.txt"); !result.Ignored || result.Category != "" {
		t.Fatalf("ignored file classified as %+v", result)
	}
	if result := classifier.Classify("notes.txt"); result.Ignored || result.Category != "Documents" {
		t.Fatalf("Classify(notes.txt) = %+v", result)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	classifier := classify.New(testTable(), nil)

	if result := classifier.Classify("PHOTO.JPG"); result.Category != "Images" {
		t.Fatalf("Classify(PHOTO.JPG) = %+v", result)
	}
}

func TestFromConfigPreservesOrder(t *testing.T) {
	cfg := config.Default()
	cfg.Organize.OtherCategory = "Misc"
	table := classify.FromConfig(&cfg)

	if table.Fallback() != "Misc" {
		t.Fatalf("Fallback = %q", table.Fallback())
	}
	if name, _ := table.Lookup("jpg"); name != "Images" {
		t.Fatalf("Lookup(jpg) = %q", name)
	}
	names := table.Names()
	if names[0] != "Images" || names[len(names)-1] != "Misc" {
		t.Fatalf("Names() = %v", names)
	}
}

func TestExt(t *testing.T) {
	cases := map[string]string{
		"photo.JPG":      "jpg",
		"archive.tar.gz": "gz",
		"README":         "",
		".gitignore":     "gitignore",
		"trailing.":      "",
	}
	for name, want := range cases {
		if got := classify.Ext(name); got != want {
			t.Fatalf("Ext(%q) = %q, want %q", name, got, want)
		}
	}
}

type matcherFunc func(string) bool

func (f matcherFunc) Match(name string) bool { return f(name) }
