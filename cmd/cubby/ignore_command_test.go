package main

import (
	"os"
	"path/filepath"
	"testing"

	"cubby/internal/ignore"
)

func TestCLIIgnoreInit(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "desk")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	out, _, err := runCLI(t, []string{"ignore", "init", target}, env.configPath)
	if err != nil {
		t.Fatalf("ignore init: %v", err)
	}
	requireContains(t, out, "Wrote sample ignore file")

	path := filepath.Join(target, ignore.FileName)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected ignore file at %s: %v", path, err)
	}

	if _, _, err := runCLI(t, []string{"ignore", "init", target}, env.configPath); err == nil {
		t.Fatal("expected init to refuse overwriting an existing file")
	}
	if _, _, err := runCLI(t, []string{"ignore", "init", target, "--overwrite"}, env.configPath); err != nil {
		t.Fatalf("ignore init --overwrite: %v", err)
	}
}
