package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"credstore/internal/domain"
)

const (
	fileMode os.FileMode = 0o600
	dirMode  os.FileMode = 0o700
)

// CredentialFileStore persists the username to record mapping in one JSON file.
type CredentialFileStore struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewCredentialFileStore returns a store backed by the file at path.
// A nil logger discards log output.
func NewCredentialFileStore(path string, logger *slog.Logger) *CredentialFileStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CredentialFileStore{path: path, log: logger}
}

// Path returns the store file location.
func (s *CredentialFileStore) Path() string { return s.path }

func (s *CredentialFileStore) dir() string { return filepath.Dir(s.path) }

// Load returns the current store contents. A missing file yields an empty store
// and creates nothing on disk.
func (s *CredentialFileStore) Load() (domain.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := acquire(s.dir(), false)
	if err != nil {
		return nil, fmt.Errorf("lock credential store: %w", err)
	}
	defer unlock()

	return s.read()
}

// Update loads the store, applies fn and writes the result back in full.
// The containing directory is created when missing. If fn returns an error
// nothing is written.
func (s *CredentialFileStore) Update(fn func(creds domain.Credentials) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir(), dirMode); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	unlock, err := acquire(s.dir(), true)
	if err != nil {
		return fmt.Errorf("lock credential store: %w", err)
	}
	defer unlock()

	creds, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(creds); err != nil {
		return err
	}
	if err := writeJSON(s.path, creds, fileMode); err != nil {
		return fmt.Errorf("write credential store: %w", err)
	}
	s.log.Debug("credential store written", "path", s.path, "users", len(creds))
	return nil
}

// read parses the store file. Content that is not a JSON object is discarded
// with a warning; entries inside a valid object are kept undecoded.
func (s *CredentialFileStore) read() (domain.Credentials, error) {
	b, ok, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read credential store: %w", err)
	}
	if !ok {
		return make(domain.Credentials), nil
	}

	var creds domain.Credentials
	if err := json.Unmarshal(b, &creds); err != nil {
		s.log.Warn("credential store is not a JSON object, starting from an empty store",
			"path", s.path, "error", err)
		return make(domain.Credentials), nil
	}
	if creds == nil { // literal null
		creds = make(domain.Credentials)
	}
	return creds, nil
}

// Compile-time assertion that CredentialFileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*CredentialFileStore)(nil)
