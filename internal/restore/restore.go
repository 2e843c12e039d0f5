package restore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"cubby/internal/config"
	"cubby/internal/faults"
	"cubby/internal/fileutil"
	"cubby/internal/journal"
	"cubby/internal/logging"
)

// Failure describes one journal entry that could not be restored.
type Failure struct {
	Source      string // original location the file should have returned to
	Destination string // where the batch had put it
	Reason      string
}

// Result summarizes one undo run.
type Result struct {
	Directory   string
	BatchID     string
	CreatedAt   time.Time
	Restored    int
	Failed      int
	Failures    []Failure
	RemovedDirs []string
}

func (r *Result) fail(op journal.Operation, reason string) {
	r.Failed++
	r.Failures = append(r.Failures, Failure{Source: op.Source, Destination: op.Destination, Reason: reason})
}

// Undoer reverses recorded batches.
type Undoer struct {
	cfg    *config.Config
	store  *journal.Store
	logger *slog.Logger
}

// New constructs an Undoer backed by the given journal store.
func New(cfg *config.Config, store *journal.Store, logger *slog.Logger) *Undoer {
	return &Undoer{
		cfg:    cfg,
		store:  store,
		logger: logging.NewComponentLogger(logger, "restore"),
	}
}

// Undo reverses dir's recorded batch, last move first. Entries that cannot
// be restored are reported and skipped rather than aborting the rest, and
// the batch is consumed either way, so a second undo reports nothing to
// undo instead of replaying stale entries.
func (u *Undoer) Undo(ctx context.Context, dir string) (*Result, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, faults.Wrap(faults.ErrInvalidTarget, "undo", "resolve directory", dir, err)
	}

	lock, err := journal.LockDirectory(u.cfg.Paths.StateDir, abs)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConflict, "undo", "lock directory", "directory is busy", err)
	}
	defer func() { _ = lock.Unlock() }()

	batch, err := u.store.Latest(ctx, abs)
	if err != nil {
		if errors.Is(err, journal.ErrNoBatch) {
			return nil, faults.Wrap(faults.ErrNoJournal, "undo", "load batch",
				fmt.Sprintf("no prior organization recorded for %s", abs), err)
		}
		return nil, faults.Wrap(faults.ErrTransient, "undo", "load batch", "journal unavailable", err)
	}

	logger := u.logger.With(
		logging.String(logging.FieldBatchID, batch.BatchID),
		logging.String(logging.FieldDirectory, abs))
	logger.Info("undoing batch", logging.Int("operations", len(batch.Operations)))

	result := &Result{Directory: abs, BatchID: batch.BatchID, CreatedAt: batch.CreatedAt}
	emptied := make(map[string]struct{})

	for i := len(batch.Operations) - 1; i >= 0; i-- {
		op := batch.Operations[i]

		if !fileutil.PathExists(op.Destination) {
			result.fail(op, "file no longer at its recorded destination")
			logger.Warn("cannot restore", logging.String("destination", op.Destination),
				logging.String("reason", "missing"))
			continue
		}
		if err := os.MkdirAll(filepath.Dir(op.Source), 0o755); err != nil {
			result.fail(op, fmt.Sprintf("recreate original folder: %v", err))
			logger.Warn("cannot restore", logging.String("source", op.Source), logging.Error(err))
			continue
		}
		if fileutil.PathExists(op.Source) {
			// A new file occupies the original path. Leaving both files
			// where they are beats guessing which one the user wants.
			result.fail(op, "original path is occupied")
			logger.Warn("cannot restore", logging.String("source", op.Source),
				logging.String("reason", "occupied"))
			continue
		}
		if err := fileutil.MoveFile(op.Destination, op.Source); err != nil {
			result.fail(op, err.Error())
			logger.Warn("cannot restore", logging.String("destination", op.Destination), logging.Error(err))
			continue
		}

		result.Restored++
		emptied[filepath.Dir(op.Destination)] = struct{}{}
		logger.Info("restored file",
			logging.String("destination", op.Destination),
			logging.String("source", op.Source))
	}

	if err := u.store.Discard(ctx, batch); err != nil {
		return nil, faults.Wrap(faults.ErrTransient, "undo", "consume batch",
			"failed to clear the undone batch", err)
	}

	if u.cfg.Organize.RemoveEmptyDirs {
		result.RemovedDirs = u.sweepEmptied(emptied, logger)
	}

	logger.Info("undo finished",
		logging.Int("restored", result.Restored),
		logging.Int("failed", result.Failed))
	return result, nil
}

// sweepEmptied removes category folders the undo emptied. Only folders the
// batch moved files into are candidates; unrelated empty folders stay.
func (u *Undoer) sweepEmptied(dirs map[string]struct{}, logger *slog.Logger) []string {
	candidates := make([]string, 0, len(dirs))
	for dir := range dirs {
		candidates = append(candidates, dir)
	}
	sort.Strings(candidates)

	var removed []string
	for _, dir := range candidates {
		ok, err := fileutil.RemoveDirIfEmpty(dir)
		if err != nil {
			logger.Warn("remove emptied folder", logging.String("directory", dir), logging.Error(err))
			continue
		}
		if ok {
			removed = append(removed, dir)
		}
	}
	return removed
}
