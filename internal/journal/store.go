package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"cubby/internal/config"
)

// ErrNoBatch reports that a directory has no recorded batch to undo.
var ErrNoBatch = errors.New("no recorded batch")

// Store manages journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database under the configured
// state directory.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.StateDir, "journal.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Begin opens a fresh batch for dir. The batch previously recorded against
// the directory stays in place until the new batch records its first move
// (see Record), so a run that ends up moving nothing leaves the last real
// run undoable. Only stale batches that never recorded an operation, left
// behind by an interrupted run, are swept here.
func (s *Store) Begin(ctx context.Context, dir string) (*Batch, error) {
	dir = filepath.Clean(dir)
	now := time.Now().UTC()
	batchID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin batch tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM batches
         WHERE directory = ? AND id NOT IN (SELECT batch_id FROM operations)`,
		dir,
	); err != nil {
		return nil, fmt.Errorf("sweep stale batches: %w", err)
	}

	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO batches (batch_id, directory, created_at) VALUES (?, ?, ?)`,
		batchID,
		dir,
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert batch: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	return &Batch{ID: id, BatchID: batchID, Directory: dir, CreatedAt: now}, nil
}

// Record appends one completed move to the batch. Every call commits on its
// own so a killed process leaves the journal covering exactly the moves that
// happened; anything recorded here is already undoable. The first recorded
// move also retires the directory's previous batch, which is why Begin
// leaves it alone.
func (s *Store) Record(ctx context.Context, batch *Batch, op Operation) error {
	if batch == nil {
		return errors.New("batch is nil")
	}

	op.Seq = len(batch.Operations) + 1
	if op.MovedAt.IsZero() {
		op.MovedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if op.Seq == 1 {
		// The batch holds a real move now; this run owns the undo slot.
		if _, err := tx.ExecContext(
			ctx,
			`DELETE FROM batches WHERE directory = ? AND id <> ?`,
			batch.Directory,
			batch.ID,
		); err != nil {
			return fmt.Errorf("retire previous batch: %w", err)
		}
	}

	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO operations (batch_id, seq, source, destination, size, moved_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		batch.ID,
		op.Seq,
		op.Source,
		op.Destination,
		op.Size,
		op.MovedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record operation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit operation: %w", err)
	}

	op.ID = id
	batch.Operations = append(batch.Operations, op)
	return nil
}

// Latest returns dir's recorded batch with operations in recorded order, or
// ErrNoBatch when the directory has nothing to undo. A batch that has not
// recorded a move yet is not a candidate; undo never replays an empty slot.
func (s *Store) Latest(ctx context.Context, dir string) (*Batch, error) {
	dir = filepath.Clean(dir)

	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, batch_id, directory, created_at FROM batches
         WHERE directory = ? AND id IN (SELECT batch_id FROM operations)
         ORDER BY id DESC LIMIT 1`,
		dir,
	)

	var batch Batch
	var createdAt string
	if err := row.Scan(&batch.ID, &batch.BatchID, &batch.Directory, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w for %s", ErrNoBatch, dir)
		}
		return nil, fmt.Errorf("load batch: %w", err)
	}
	batch.CreatedAt = parseTimestamp(createdAt)

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, seq, source, destination, size, moved_at FROM operations
         WHERE batch_id = ? ORDER BY seq`,
		batch.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("load operations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var op Operation
		var movedAt string
		if err := rows.Scan(&op.ID, &op.Seq, &op.Source, &op.Destination, &op.Size, &movedAt); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		op.MovedAt = parseTimestamp(movedAt)
		batch.Operations = append(batch.Operations, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}

	return &batch, nil
}

// Discard removes a consumed or empty batch.
func (s *Store) Discard(ctx context.Context, batch *Batch) error {
	if batch == nil {
		return errors.New("batch is nil")
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM batches WHERE id = ?`, batch.ID); err != nil {
		return fmt.Errorf("discard batch: %w", err)
	}
	return nil
}

// Summaries lists every directory holding an undoable batch, newest first.
func (s *Store) Summaries(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT b.directory, b.batch_id, b.created_at,
                COUNT(o.id), SUM(o.size)
         FROM batches b
         JOIN operations o ON o.batch_id = b.id
         GROUP BY b.id
         ORDER BY b.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load summaries: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var summary Summary
		var createdAt string
		if err := rows.Scan(&summary.Directory, &summary.BatchID, &createdAt, &summary.Operations, &summary.Bytes); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summary.CreatedAt = parseTimestamp(createdAt)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}

	return summaries, nil
}

// DatabaseHealth captures diagnostic information about the journal database.
type DatabaseHealth struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	TableExists      bool
	Batches          int
	Operations       int
	Error            string
}

// CheckHealth returns diagnostic information about the journal database.
func (s *Store) CheckHealth(ctx context.Context) (DatabaseHealth, error) {
	health := DatabaseHealth{DBPath: s.path}

	if s.path == "" {
		return health, errors.New("journal database path is unknown")
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return health, nil
		}
		return health, fmt.Errorf("stat journal database: %w", err)
	}
	if info.IsDir() {
		return health, fmt.Errorf("journal database path %q is a directory", s.path)
	}
	health.DatabaseExists = true

	if s.db == nil {
		return health, errors.New("journal database connection unavailable")
	}

	connCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(connCtx); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("ping journal database: %w", err)
	}
	health.DatabaseReadable = true

	var tableName string
	row := s.db.QueryRowContext(connCtx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'batches'")
	if err := row.Scan(&tableName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return health, errors.New("batches table missing")
		}
		health.Error = err.Error()
		return health, fmt.Errorf("inspect journal schema: %w", err)
	}
	health.TableExists = true

	if err := s.db.QueryRowContext(connCtx, "SELECT COUNT(1) FROM batches").Scan(&health.Batches); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("count batches: %w", err)
	}
	if err := s.db.QueryRowContext(connCtx, "SELECT COUNT(1) FROM operations").Scan(&health.Operations); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("count operations: %w", err)
	}

	return health, nil
}

// parseTimestamp decodes the RFC3339Nano strings the store writes. Corrupt
// values come back as the zero time rather than failing a whole load.
func parseTimestamp(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
