//go:build unix

package store

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// acquire takes an advisory flock on the directory dir and returns its release
// func. Locking the directory leaves no lock file behind. A missing directory
// holds no store, so a shared lock on it is a no-op.
func acquire(dir string, exclusive bool) (func(), error) {
	how := unix.LOCK_SH
	if exclusive {
		how = unix.LOCK_EX
	}

	f, err := os.Open(dir)
	if err != nil {
		if !exclusive && errors.Is(err, os.ErrNotExist) {
			return func() {}, nil
		}
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), how); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}
