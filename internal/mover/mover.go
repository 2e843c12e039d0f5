package mover

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cubby/internal/collision"
	"cubby/internal/config"
	"cubby/internal/faults"
	"cubby/internal/fileutil"
	"cubby/internal/journal"
	"cubby/internal/logging"
	"cubby/internal/plan"
)

// Failure describes one plan entry the executor could not complete.
type Failure struct {
	Source      string
	Destination string
	Reason      string
}

// Result summarizes one batch execution. A dry run reports the moves it
// would make without mutating anything; DryRun distinguishes the two.
type Result struct {
	Directory string
	BatchID   string // empty for dry runs and batches that moved nothing
	DryRun    bool
	Moved     int
	Failed    int
	Skipped   int
	Completed []plan.Entry
	Failures  []Failure
}

func (r *Result) fail(entry plan.Entry, reason string) {
	r.Failed++
	r.Failures = append(r.Failures, Failure{Source: entry.Source, Destination: entry.Destination, Reason: reason})
}

// Mover applies move plans to the filesystem and records every completed
// move in the journal.
type Mover struct {
	cfg    *config.Config
	store  *journal.Store
	logger *slog.Logger
}

// New constructs a Mover. The store may be nil when every call will be a
// dry run; live execution requires a journal.
func New(cfg *config.Config, store *journal.Store, logger *slog.Logger) *Mover {
	return &Mover{
		cfg:    cfg,
		store:  store,
		logger: logging.NewComponentLogger(logger, "mover"),
	}
}

// Execute runs the plan in order. Failures are collected per entry rather
// than aborting the batch; only journal write errors stop execution early,
// because a move the journal does not cover cannot be undone. A run that
// completes no move leaves the previously recorded batch as the undo target.
func (m *Mover) Execute(ctx context.Context, p *plan.Plan, dryRun bool) (*Result, error) {
	result := &Result{
		Directory: p.Directory,
		DryRun:    dryRun,
		Skipped:   len(p.Skipped),
	}

	if dryRun {
		result.Moved = len(p.Entries)
		result.Completed = append(result.Completed, p.Entries...)
		m.logger.Info("previewed plan",
			logging.String(logging.FieldDirectory, p.Directory),
			logging.Bool(logging.FieldDryRun, true),
			logging.Int("moves", len(p.Entries)),
			logging.Int("skipped", len(p.Skipped)))
		return result, nil
	}

	if len(p.Entries) == 0 {
		// Nothing to move, typically a rerun on an already organized
		// directory. The journal is not touched, so whatever batch was
		// recorded last is still undoable.
		m.logger.Info("nothing to move",
			logging.String(logging.FieldDirectory, p.Directory),
			logging.Int("skipped", len(p.Skipped)))
		return result, nil
	}

	lock, err := journal.LockDirectory(m.cfg.Paths.StateDir, p.Directory)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConflict, "organize", "lock directory", "directory is busy", err)
	}
	defer func() { _ = lock.Unlock() }()

	start := time.Now()
	batch, err := m.store.Begin(ctx, p.Directory)
	if err != nil {
		return nil, faults.Wrap(faults.ErrTransient, "organize", "open batch", "journal unavailable", err)
	}

	// Destinations resolved at plan time are claimed up front so a late
	// collision never probes its way onto another entry's destination.
	resolver := collision.NewResolver(nil)
	for _, entry := range p.Entries {
		resolver.Claim(entry.Destination)
	}

	logger := m.logger.With(
		logging.String(logging.FieldBatchID, batch.BatchID),
		logging.String(logging.FieldDirectory, p.Directory))
	logger.Info("executing plan",
		logging.Int("moves", len(p.Entries)),
		logging.Int("skipped", len(p.Skipped)))

	for _, entry := range p.Entries {
		destination := entry.Destination

		if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
			result.fail(entry, fmt.Sprintf("create category folder: %v", err))
			logger.Warn("move failed", logging.String("source", entry.Source), logging.Error(err))
			continue
		}

		if fileutil.PathExists(destination) {
			// Something claimed the planned destination between planning and
			// execution; pick a fresh suffix instead of overwriting.
			resolved, resolveErr := resolver.Resolve(destination)
			if resolveErr != nil {
				result.fail(entry, fmt.Sprintf("resolve destination: %v", resolveErr))
				logger.Warn("move failed", logging.String("source", entry.Source), logging.Error(resolveErr))
				continue
			}
			logger.Debug("planned destination taken",
				logging.String("planned", destination),
				logging.String("resolved", resolved))
			destination = resolved
		}

		if err := fileutil.MoveFile(entry.Source, destination); err != nil {
			result.fail(entry, err.Error())
			logger.Warn("move failed", logging.String("source", entry.Source), logging.Error(err))
			continue
		}

		op := journal.Operation{Source: entry.Source, Destination: destination, Size: entry.Size}
		if err := m.store.Record(ctx, batch, op); err != nil {
			// The file is already at its destination but the journal does
			// not know; stop before any further unrecorded mutation. The
			// operations recorded so far stay undoable.
			return nil, faults.Wrap(faults.ErrTransient, "organize", "record move",
				fmt.Sprintf("journal write failed after moving %s", entry.Source), err)
		}

		moved := entry
		moved.Destination = destination
		result.Completed = append(result.Completed, moved)
		result.Moved++
		logger.Info("moved file",
			logging.String("source", entry.Source),
			logging.String("destination", destination),
			logging.String("category", entry.Category),
			logging.Int64("size", entry.Size))
	}

	if result.Moved == 0 {
		// Every entry failed, so the batch never claimed the undo slot;
		// drop it and leave the previous batch in place.
		if err := m.store.Discard(ctx, batch); err != nil {
			logger.Warn("discard empty batch", logging.Error(err))
		}
	} else {
		result.BatchID = batch.BatchID
	}

	summaryAttrs := []logging.Attr{
		logging.Int("moved", result.Moved),
		logging.Int("failed", result.Failed),
		logging.Duration("duration", time.Since(start)),
	}
	if result.Failed > 0 {
		logger.Warn("plan executed", logging.Args(summaryAttrs...)...)
	} else {
		logger.Info("plan executed", logging.Args(summaryAttrs...)...)
	}
	return result, nil
}
