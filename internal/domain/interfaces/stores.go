package interfaces

import domaintypes "credstore/internal/domain/types"

// CredentialStore loads and persists the credential file.
//
// Update runs one load, mutate, save cycle; fn receives the loaded store
// (never nil) and its changes are written back only if fn returns nil.
type CredentialStore interface {
	Update(fn func(creds domaintypes.Credentials) error) error
	Load() (domaintypes.Credentials, error)
	Path() string
}
