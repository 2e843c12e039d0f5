package preflight

import (
	"context"

	"cubby/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the environment checks the doctor command reports. The
// target directory is optional; when empty only the state-side checks run.
func RunAll(ctx context.Context, cfg *config.Config, targetDir string) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckStateDir(cfg),
		CheckJournal(ctx, cfg),
	}
	if targetDir != "" {
		results = append(results, CheckTarget(targetDir))
	}
	return results
}
