package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"cubby/internal/config"
	"cubby/internal/faults"
	"cubby/internal/journal"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status [directory]",
		Short: "Show undoable batches",
		Long: `Without arguments, lists every directory with an undoable batch. With a
directory, shows the recorded moves of that directory's batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := journal.Open(cfg)
			if err != nil {
				return faults.Wrap(faults.ErrTransient, "status", "open journal", "", err)
			}
			defer store.Close()

			if len(args) == 0 {
				return runStatusOverview(cmd, ctx, store)
			}
			return runStatusDirectory(cmd, ctx, store, args[0])
		},
	}
}

func runStatusOverview(cmd *cobra.Command, ctx *commandContext, store *journal.Store) error {
	summaries, err := store.Summaries(cmd.Context())
	if err != nil {
		return faults.Wrap(faults.ErrTransient, "status", "list batches", "", err)
	}

	if ctx.JSONMode() {
		type jsonSummary struct {
			Directory  string `json:"directory"`
			BatchID    string `json:"batch_id"`
			CreatedAt  string `json:"created_at"`
			Operations int    `json:"operations"`
			Bytes      int64  `json:"bytes"`
		}
		items := make([]jsonSummary, 0, len(summaries))
		for _, summary := range summaries {
			items = append(items, jsonSummary{
				Directory:  summary.Directory,
				BatchID:    summary.BatchID,
				CreatedAt:  summary.CreatedAt.UTC().Format(time.RFC3339),
				Operations: summary.Operations,
				Bytes:      summary.Bytes,
			})
		}
		return writeJSON(cmd.OutOrStdout(), map[string]any{"batches": items})
	}

	if len(summaries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No organize batches recorded")
		return nil
	}

	rows := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, []string{
			summary.Directory,
			humanize.Time(summary.CreatedAt),
			strconv.Itoa(summary.Operations),
			humanize.Bytes(uint64(summary.Bytes)),
		})
	}
	table := renderTable(
		[]string{"Directory", "Organized", "Moves", "Size"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
	)
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}

func runStatusDirectory(cmd *cobra.Command, ctx *commandContext, store *journal.Store, arg string) error {
	dir, err := config.ExpandPath(arg)
	if err != nil {
		return faults.Wrap(faults.ErrInvalidTarget, "status", "resolve directory", arg, err)
	}

	batch, err := store.Latest(cmd.Context(), dir)
	if err != nil {
		if errors.Is(err, journal.ErrNoBatch) {
			if ctx.JSONMode() {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"directory": dir, "batch": nil})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "No undoable batch for %s\n", dir)
			return nil
		}
		return faults.Wrap(faults.ErrTransient, "status", "load batch", "", err)
	}

	if ctx.JSONMode() {
		type jsonOp struct {
			Seq         int    `json:"seq"`
			Source      string `json:"source"`
			Destination string `json:"destination"`
			SizeBytes   int64  `json:"size_bytes"`
		}
		ops := make([]jsonOp, 0, len(batch.Operations))
		for _, op := range batch.Operations {
			ops = append(ops, jsonOp{Seq: op.Seq, Source: op.Source, Destination: op.Destination, SizeBytes: op.Size})
		}
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"directory":  batch.Directory,
			"batch_id":   batch.BatchID,
			"created_at": batch.CreatedAt,
			"operations": ops,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Batch %s, organized %s\n\n", batch.BatchID, humanize.Time(batch.CreatedAt))

	rows := make([][]string, 0, len(batch.Operations))
	for _, op := range batch.Operations {
		rows = append(rows, []string{
			relativeTo(batch.Directory, op.Source),
			relativeTo(batch.Directory, op.Destination),
			humanize.Bytes(uint64(op.Size)),
		})
	}
	table := renderTable(
		[]string{"From", "To", "Size"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	)
	fmt.Fprintln(out, table)
	fmt.Fprintf(out, "Undo with: cubby undo %s\n", batch.Directory)
	return nil
}
