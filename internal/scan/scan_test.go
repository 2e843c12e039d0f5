package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"cubby/internal/scan"
	"cubby/internal/testsupport"
)

func names(entries []scan.FileEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Name)
	}
	return out
}

func TestScanTopLevelOnly(t *testing.T) {
	dir := t.TempDir()
	testsupport.Tree(t, dir, "b.txt", "a.jpg", filepath.Join("nested", "deep.pdf"))

	entries, err := scan.Scan(dir, false, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	got := names(entries)
	want := []string{"a.jpg", "b.txt"}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want lexical order %v", got, want)
		}
	}
	if entries[0].Ext != "jpg" || entries[0].Path != filepath.Join(dir, "a.jpg") {
		t.Fatalf("entry metadata wrong: %+v", entries[0])
	}
	if entries[1].Size != int64(len("b.txt")) {
		t.Fatalf("size = %d", entries[1].Size)
	}
}

func TestScanRecursiveSkipsNamedDirs(t *testing.T) {
	dir := t.TempDir()
	testsupport.Tree(t, dir,
		"top.txt",
		filepath.Join("nested", "inner.pdf"),
		filepath.Join("nested", "Documents", "already.pdf"),
		filepath.Join("Documents", "organized.pdf"),
	)

	entries, err := scan.Scan(dir, true, []string{"Documents"})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	got := names(entries)
	want := []string{"inner.pdf", "top.txt"}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}
	for _, entry := range entries {
		if filepath.Base(filepath.Dir(entry.Path)) == "Documents" {
			t.Fatalf("scanned inside a skipped directory: %s", entry.Path)
		}
	}
}

func TestScanIgnoresSymlinks(t *testing.T) {
	dir := t.TempDir()
	paths := testsupport.Tree(t, dir, "real.txt")
	if err := os.Symlink(paths[0], filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	entries, err := scan.Scan(dir, false, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "real.txt" {
		t.Fatalf("entries = %v, want only real.txt", names(entries))
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := scan.Scan(filepath.Join(t.TempDir(), "absent"), false, nil); err == nil {
		t.Fatal("expected error for missing root")
	}
}
