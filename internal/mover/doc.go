// Package mover executes move plans and journals every completed move.
//
// Execution is deliberately conservative: destinations are re-checked right
// before each rename, files that fail to move are reported and skipped, and
// a journal write failure halts the batch because an unrecorded move cannot
// be undone. Moves happen before their journal writes, so a crash can at
// worst leave one extra file at its destination, never a journal entry for
// a move that did not happen.
package mover
