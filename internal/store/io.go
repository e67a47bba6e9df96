package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"

	"github.com/natefinch/atomic"
)

// readFile reads the file at path; a missing file is reported via ok=false, not an error.
func readFile(path string) (b []byte, ok bool, err error) {
	b, err = os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// writeJSON writes v as 2-space indented JSON, atomically replacing path.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, b, mode)
}

// writeFile writes bytes via a temp file in the same directory, then renames it
// over path. An existing file keeps its permissions; mode applies to new files.
func writeFile(path string, b []byte, mode os.FileMode) error {
	_, err := os.Stat(path)
	created := errors.Is(err, os.ErrNotExist)

	if err := atomic.WriteFile(path, bytes.NewReader(b)); err != nil {
		return err
	}
	if created {
		return os.Chmod(path, mode)
	}
	return nil
}
