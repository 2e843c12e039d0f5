package main

import (
	"os"
	"path/filepath"
	"testing"

	"cubby/internal/testsupport"
)

func TestCLIInspectReportsWithoutMoving(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "closet")
	testsupport.Tree(t, target, "a.pdf", "b.pdf", "notes.xyz")

	pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	if err := os.WriteFile(filepath.Join(target, "banner"), pngHeader, 0o644); err != nil {
		t.Fatalf("write banner: %v", err)
	}

	out, _, err := runCLI(t, []string{"inspect", target}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "Documents")
	requireContains(t, out, `.xyz (1 file(s)), suggested category "Xyz"`)
	requireContains(t, out, "banner: looks like png (image/png)")

	if _, err := os.Stat(filepath.Join(target, "a.pdf")); err != nil {
		t.Fatalf("inspect moved a file: %v", err)
	}
}

func TestCLIInspectJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "closet")
	testsupport.Tree(t, target, "a.pdf", "clip.mp4")

	out, _, err := runCLI(t, []string{"--json", "inspect", target}, env.configPath)
	if err != nil {
		t.Fatalf("inspect --json: %v", err)
	}
	requireContains(t, out, `"total_files": 2`)
	requireContains(t, out, `"Documents"`)
	requireContains(t, out, `"Videos"`)
}
