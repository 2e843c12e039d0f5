// Package plan turns scan results into an ordered batch of proposed moves.
//
// A plan is a pure value: building one classifies every file, picks
// collision-free destinations, and records what was skipped, all without
// moving anything. The same plan feeds both the dry-run preview and the
// executor, which is what makes the preview trustworthy.
package plan
