package credential

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"credstore/internal/crypto"
	"credstore/internal/domain"
	"credstore/internal/store"
)

// UpsertUser stores a record for username in the file at storePath using the
// default salt and SHA-1.
func UpsertUser(storePath string, username domain.Username, password, email string, isAdmin bool) error {
	svc := New(store.NewCredentialFileStore(storePath, nil), NewBuilder(DefaultSalt, nil, nil), nil)
	_, err := svc.UpsertUser(username, password, email, isAdmin)
	return err
}

// Service manages user entries in a credential store.
type Service struct {
	store   domain.CredentialStore
	builder *Builder
	log     *slog.Logger
}

// New returns a credential service backed by the given store. A nil logger
// discards log output.
func New(store domain.CredentialStore, builder *Builder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, builder: builder, log: logger}
}

// UpsertUser stores a fresh record for username, overwriting any existing entry.
// Other entries are kept as loaded.
func (s *Service) UpsertUser(
	username domain.Username,
	password, email string,
	isAdmin bool,
) (domain.Record, error) {
	if username == "" {
		return domain.Record{}, domain.ErrEmptyUsername
	}

	var (
		rec     domain.Record
		existed bool
	)
	err := s.store.Update(func(creds domain.Credentials) error {
		_, existed = creds[username.String()]
		rec = s.builder.Build(password, email, isAdmin)
		return creds.SetRecord(username.String(), rec)
	})
	if err != nil {
		return domain.Record{}, fmt.Errorf("saving user %q: %w", username, err)
	}
	s.log.Info("user saved", "username", username, "admin", isAdmin, "replaced", existed)
	return rec, nil
}

// Verify checks password against the stored hash, recomputed with the
// record's own timestamp. Unknown users and wrong passwords both yield
// domain.ErrInvalidCredentials.
func (s *Service) Verify(username domain.Username, password string) error {
	creds, err := s.store.Load()
	if err != nil {
		return err
	}
	if !s.authenticates(creds, username, password) {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// ResetPassword replaces the password after verifying the old one. Only the
// hash and timestamp change; every other field of the entry is kept.
func (s *Service) ResetPassword(username domain.Username, oldPassword, newPassword string) error {
	err := s.store.Update(func(creds domain.Credentials) error {
		if !s.authenticates(creds, username, oldPassword) {
			return domain.ErrInvalidCredentials
		}
		rec := s.builder.Build(newPassword, "", false)
		return creds.SetFields(username.String(), map[string]any{
			"password":           rec.PasswordHash,
			"last_modified_date": rec.LastModified,
		})
	})
	if err != nil {
		return fmt.Errorf("resetting password for %q: %w", username, err)
	}
	s.log.Info("password reset", "username", username)
	return nil
}

// RemoveUser deletes the entry for username.
func (s *Service) RemoveUser(username domain.Username) error {
	err := s.store.Update(func(creds domain.Credentials) error {
		if _, ok := creds[username.String()]; !ok {
			return domain.ErrUserNotFound
		}
		delete(creds, username.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("removing user %q: %w", username, err)
	}
	s.log.Info("user removed", "username", username)
	return nil
}

// ListUsers returns every entry without its hash, sorted by username. Entries
// that do not decode as records are skipped with a warning.
func (s *Service) ListUsers() ([]domain.UserSummary, error) {
	creds, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserSummary, 0, len(creds))
	for _, name := range slices.Sorted(maps.Keys(creds)) {
		rec, _, err := creds.Record(name)
		if err != nil {
			s.log.Warn("skipping unreadable entry", "username", name, "error", err)
			continue
		}
		out = append(out, domain.UserSummary{
			Username:     domain.Username(name),
			Email:        rec.Email,
			LastModified: rec.LastModified,
			IsAdmin:      rec.IsAdmin,
		})
	}
	return out, nil
}

// authenticates reports whether password matches the stored entry. Missing and
// undecodable entries never match.
func (s *Service) authenticates(creds domain.Credentials, username domain.Username, password string) bool {
	rec, ok, err := creds.Record(username.String())
	if !ok || err != nil {
		return false
	}
	return crypto.Equal(s.builder.Hash(password, rec.LastModified), rec.PasswordHash)
}

// Compile-time assertion that Service implements domain.CredentialService.
var _ domain.CredentialService = (*Service)(nil)
