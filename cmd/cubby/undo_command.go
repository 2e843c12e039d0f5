package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"cubby/internal/config"
	"cubby/internal/faults"
	"cubby/internal/journal"
	"cubby/internal/restore"
)

func newUndoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <directory>",
		Short: "Put the last organized batch back",
		Long: `Replays the journal for the directory in reverse, moving every file of the
most recent batch back to where it was picked up. Files that have since
moved or whose original path is now occupied are reported and left alone.

Each directory holds one undo slot; organizing again replaces it, and a
successful undo consumes it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return faults.Wrap(faults.ErrInvalidTarget, "undo", "resolve directory", args[0], err)
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			store, err := journal.Open(cfg)
			if err != nil {
				return faults.Wrap(faults.ErrTransient, "undo", "open journal", "", err)
			}
			defer store.Close()

			result, err := restore.New(cfg, store, logger).Undo(cmd.Context(), dir)
			if err != nil {
				return err
			}

			if ctx.JSONMode() {
				return writeUndoJSON(cmd, result)
			}
			printUndoResult(cmd, result)
			return nil
		},
	}
}

func printUndoResult(cmd *cobra.Command, result *restore.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Undoing batch from %s (%s)\n", humanize.Time(result.CreatedAt), result.Directory)

	for _, failure := range result.Failures {
		fmt.Fprintf(out, "Skipped %s: %s\n", relativeTo(result.Directory, failure.Destination), failure.Reason)
	}

	fmt.Fprintf(out, "Restored %d file(s)\n", result.Restored)
	for _, dir := range result.RemovedDirs {
		fmt.Fprintf(out, "Removed empty folder %s\n", relativeTo(result.Directory, dir))
	}
}

func writeUndoJSON(cmd *cobra.Command, result *restore.Result) error {
	type jsonFailure struct {
		Source      string `json:"source"`
		Destination string `json:"destination"`
		Reason      string `json:"reason"`
	}

	failures := make([]jsonFailure, 0, len(result.Failures))
	for _, failure := range result.Failures {
		failures = append(failures, jsonFailure{
			Source:      failure.Source,
			Destination: failure.Destination,
			Reason:      failure.Reason,
		})
	}
	removed := result.RemovedDirs
	if removed == nil {
		removed = []string{}
	}

	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"directory":    result.Directory,
		"batch_id":     result.BatchID,
		"created_at":   result.CreatedAt,
		"restored":     result.Restored,
		"failed":       result.Failed,
		"failures":     failures,
		"removed_dirs": removed,
	})
}
