package journal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// DirLock guards a target directory against concurrent cubby invocations.
// The lock is advisory: it lives in the state directory, keyed by a digest
// of the directory path, and protects the journal rather than the files
// themselves.
type DirLock struct {
	lock *flock.Flock
	path string
}

// LockDirectory acquires the per-directory lock under stateDir without
// blocking: a directory already being organized or undone is reported
// immediately instead of queueing behind the other run.
func LockDirectory(stateDir, dir string) (*DirLock, error) {
	lockDir := filepath.Join(stateDir, "locks")
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}

	digest := sha256.Sum256([]byte(filepath.Clean(dir)))
	lockPath := filepath.Join(lockDir, hex.EncodeToString(digest[:8])+".lock")

	fileLock := flock.New(lockPath)
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("another cubby invocation is already working on %s", dir)
	}

	return &DirLock{lock: fileLock, path: lockPath}, nil
}

// Path returns the lock file location.
func (l *DirLock) Path() string {
	return l.path
}

// Unlock releases the lock. Safe to call on a nil lock.
func (l *DirLock) Unlock() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
