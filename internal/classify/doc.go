// Package classify maps file names to destination categories.
//
// The category table comes straight from configuration and keeps its
// declaration order, which makes classification deterministic: the first
// category claiming an extension wins, and unclaimed extensions land in the
// fallback bucket. Classification is pure string work so the planner can run
// it against thousands of names without touching the filesystem.
package classify
