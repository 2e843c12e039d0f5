package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"cubby/internal/mover"
	"cubby/internal/plan"
)

func printOrganizeResult(cmd *cobra.Command, p *plan.Plan, result *mover.Result) {
	out := cmd.OutOrStdout()

	if result.DryRun {
		fmt.Fprintf(out, "Planned moves for %s (dry run)\n", result.Directory)
	} else {
		fmt.Fprintf(out, "Organized %s\n", result.Directory)
	}

	if len(result.Completed) > 0 {
		rows := make([][]string, 0, len(result.Completed))
		for _, entry := range result.Completed {
			rows = append(rows, []string{
				relativeTo(result.Directory, entry.Source),
				entry.Category,
				relativeTo(result.Directory, entry.Destination),
				humanize.Bytes(uint64(entry.Size)),
			})
		}
		table := renderTable(
			[]string{"File", "Category", "Destination", "Size"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
		)
		fmt.Fprintln(out)
		fmt.Fprintln(out, table)
	}

	for _, failure := range result.Failures {
		fmt.Fprintf(out, "Failed to move %s: %s\n", relativeTo(result.Directory, failure.Source), failure.Reason)
	}
	for _, skipped := range p.Skipped {
		fmt.Fprintf(out, "Skipped %s: %s\n", relativeTo(result.Directory, skipped.Path), skipped.Reason)
	}

	if result.Moved == 0 {
		fmt.Fprintln(out, "No files to organize")
		return
	}

	verb := "Moved"
	if result.DryRun {
		verb = "Would move"
	}
	fmt.Fprintf(out, "%s %d file(s), %s\n", verb, result.Moved, humanize.Bytes(uint64(movedBytes(result.Completed))))
	if result.BatchID != "" {
		fmt.Fprintf(out, "Undo with: cubby undo %s\n", result.Directory)
	}
}

func writeOrganizeJSON(cmd *cobra.Command, p *plan.Plan, result *mover.Result) error {
	type jsonMove struct {
		Source      string `json:"source"`
		Destination string `json:"destination"`
		Category    string `json:"category"`
		SizeBytes   int64  `json:"size_bytes"`
	}
	type jsonSkip struct {
		Path   string `json:"path"`
		Reason string `json:"reason"`
	}
	type jsonFailure struct {
		Source      string `json:"source"`
		Destination string `json:"destination"`
		Reason      string `json:"reason"`
	}

	moves := make([]jsonMove, 0, len(result.Completed))
	for _, entry := range result.Completed {
		moves = append(moves, jsonMove{
			Source:      entry.Source,
			Destination: entry.Destination,
			Category:    entry.Category,
			SizeBytes:   entry.Size,
		})
	}
	skips := make([]jsonSkip, 0, len(p.Skipped))
	for _, skipped := range p.Skipped {
		skips = append(skips, jsonSkip{Path: skipped.Path, Reason: skipped.Reason})
	}
	failures := make([]jsonFailure, 0, len(result.Failures))
	for _, failure := range result.Failures {
		failures = append(failures, jsonFailure{
			Source:      failure.Source,
			Destination: failure.Destination,
			Reason:      failure.Reason,
		})
	}

	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"directory":   result.Directory,
		"dry_run":     result.DryRun,
		"batch_id":    result.BatchID,
		"moved":       result.Moved,
		"failed":      result.Failed,
		"total_bytes": movedBytes(result.Completed),
		"moves":       moves,
		"skipped":     skips,
		"failures":    failures,
	})
}

func movedBytes(entries []plan.Entry) int64 {
	var total int64
	for _, entry := range entries {
		total += entry.Size
	}
	return total
}

// relativeTo shortens path for display when it sits under base.
func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
