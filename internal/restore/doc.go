// Package restore walks a recorded batch backwards and puts files back.
//
// Undo replays the journal in reverse execution order, recreates original
// folders as needed, and refuses to overwrite anything that now occupies an
// original path. The consumed batch is always cleared, matching the
// single-slot undo model: cubby remembers exactly one batch per directory.
package restore
