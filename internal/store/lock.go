package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the advisory lock file created inside a project directory.
const LockFileName = ".folio.lock"

// Lock guards a project directory against concurrent folio processes.
type Lock struct {
	fl   *flock.Flock
	path string
}

// LockProject acquires the advisory lock for a project directory, creating
// the directory if needed. It returns ErrProjectLocked when another process
// already holds the lock.
func LockProject(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create project directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, LockFileName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire project lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectLocked, path)
	}
	return &Lock{fl: fl, path: path}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Unlock releases the lock. Safe to call on a nil lock.
func (l *Lock) Unlock() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
