// Package preflight provides readiness checks for the directories and state
// cubby depends on.
//
// These checks run in two contexts:
//   - organize and inspect call EnsureTarget before touching anything, so
//     an invalid target aborts cleanly instead of organizing half a
//     directory.
//   - The CLI "cubby doctor" command uses RunAll to display the health of
//     the state directory, the journal database, and an optional target.
package preflight
