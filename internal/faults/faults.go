// Package faults defines the error markers shared across cubby and maps them
// to process exit codes.
//
// Engine code tags failures with one of the exported sentinels via Wrap so
// callers can classify errors with errors.Is without parsing messages. The CLI
// entry point converts the marker into the documented exit code.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTarget marks a target directory that is missing, not a
	// directory, or not accessible. Fatal before planning starts.
	ErrInvalidTarget = errors.New("invalid target directory")
	// ErrNoJournal marks an undo request for a directory with no recorded batch.
	ErrNoJournal = errors.New("nothing to undo")
	// ErrValidation marks malformed caller input such as a bad ignore pattern.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks unusable configuration detected at load time.
	ErrConfiguration = errors.New("configuration error")
	// ErrConflict marks a second invocation racing on the same directory.
	ErrConflict = errors.New("conflicting invocation")
	// ErrTransient marks environmental failures worth retrying.
	ErrTransient = errors.New("transient failure")
)

// Exit codes surfaced by the cubby binary.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitInvalidTarget = 2
	ExitNoJournal     = 3
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps an error to the exit code the cubby binary should return.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidTarget):
		return ExitInvalidTarget
	case errors.Is(err, ErrNoJournal):
		return ExitNoJournal
	default:
		return ExitFailure
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failure"
	}
	return strings.Join(parts, ": ")
}
