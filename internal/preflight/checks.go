package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"cubby/internal/config"
	"cubby/internal/faults"
	"cubby/internal/journal"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckTarget verifies the directory an organize or undo run will mutate.
func CheckTarget(dir string) Result {
	return CheckDirectoryAccess("Target directory", dir)
}

// EnsureTarget is the fatal gate run before anything touches the target: a
// failed check aborts the command with an invalid-target error instead of
// organizing half a directory.
func EnsureTarget(dir string) error {
	if result := CheckTarget(dir); !result.Passed {
		return faults.Wrap(faults.ErrInvalidTarget, "preflight", "check target", result.Detail, nil)
	}
	return nil
}

// CheckStateDir verifies the journal's home can be created and written.
func CheckStateDir(cfg *config.Config) Result {
	const name = "State directory"
	if err := cfg.EnsureDirectories(); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", cfg.Paths.StateDir, err)}
	}
	return CheckDirectoryAccess(name, cfg.Paths.StateDir)
}

// CheckJournal opens the journal database and runs its self-diagnostics.
func CheckJournal(ctx context.Context, cfg *config.Config) Result {
	const name = "Journal database"

	store, err := journal.Open(cfg)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("open failed: %v", err)}
	}
	defer store.Close()

	health, err := store.CheckHealth(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", health.DBPath, err)}
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%s (%d batches, %d operations)", health.DBPath, health.Batches, health.Operations),
	}
}
