//go:build !unix

package store

// acquire is a no-op where flock is unavailable; concurrent writers race and
// the last one wins.
func acquire(string, bool) (func(), error) {
	return func() {}, nil
}
