// Package runlock enforces one conversion run per output tree. The lock
// is advisory and non-blocking: a second run aiming at the same directory
// fails fast instead of interleaving half-written temp files with the
// first.
package runlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"webpify/internal/services"
)

const lockFileName = ".webpify.lock"

// Lock guards an output tree for the duration of a run.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes the lock for dir. The lock file is hidden so discovery
// never picks it up.
func Acquire(dir string) (*Lock, error) {
	path := filepath.Join(dir, lockFileName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrLocked, "runlock", "acquire", path, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrLocked, "runlock", "acquire",
			fmt.Sprintf("another conversion is already running in %s", dir), nil)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Release drops the lock. The lock file itself stays behind; removing it
// would race a concurrent acquirer holding the same name.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}
