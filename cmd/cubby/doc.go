// Package main hosts the cubby CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into organize
// plans, undo runs, journal queries, and configuration scaffolding. It
// centralizes configuration resolution, structured logging setup, and output
// rendering so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
