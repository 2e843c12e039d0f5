package main

import (
	"os"
	"path/filepath"
	"testing"

	"cubby/internal/testsupport"
)

func TestCLIStatusOverviewAndDirectory(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "No organize batches recorded")

	target := filepath.Join(env.baseDir, "desk")
	testsupport.Tree(t, target, "a.pdf", "b.png")
	if _, _, err := runCLI(t, []string{"organize", target}, env.configPath); err != nil {
		t.Fatalf("organize: %v", err)
	}

	out, _, err = runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status after organize: %v", err)
	}
	requireContains(t, out, target)

	out, _, err = runCLI(t, []string{"status", target}, env.configPath)
	if err != nil {
		t.Fatalf("status %s: %v", target, err)
	}
	requireContains(t, out, filepath.Join("Documents", "a.pdf"))
	requireContains(t, out, filepath.Join("Images", "b.png"))
	requireContains(t, out, "Undo with: cubby undo "+target)
}

func TestCLIStatusDirectoryWithoutBatch(t *testing.T) {
	env := setupCLITestEnv(t)

	other := filepath.Join(env.baseDir, "other")
	if err := os.MkdirAll(other, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	out, _, err := runCLI(t, []string{"status", other}, env.configPath)
	if err != nil {
		t.Fatalf("status without batch should not fail: %v", err)
	}
	requireContains(t, out, "No undoable batch for "+other)
}

func TestCLIStatusConsumedAfterUndo(t *testing.T) {
	env := setupCLITestEnv(t)

	target := filepath.Join(env.baseDir, "desk")
	testsupport.Tree(t, target, "a.pdf")
	if _, _, err := runCLI(t, []string{"organize", target}, env.configPath); err != nil {
		t.Fatalf("organize: %v", err)
	}
	if _, _, err := runCLI(t, []string{"undo", target}, env.configPath); err != nil {
		t.Fatalf("undo: %v", err)
	}

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status after undo: %v", err)
	}
	requireContains(t, out, "No organize batches recorded")
}
