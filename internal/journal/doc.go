// Package journal persists the move batches that make organize runs
// reversible.
//
// Each organized directory owns at most one recorded batch: beginning a new
// batch drops the previous one, and undo discards the batch it consumed.
// Operations are committed one at a time as moves complete, so a process
// killed mid-run leaves a journal describing exactly the moves that
// happened. SQLite's journaled transactions provide the torn-write
// protection a flat log file would need hand-rolled write-then-rename
// choreography for.
//
// The package also owns the advisory per-directory locks that keep two
// invocations from interleaving moves against the same directory.
package journal
