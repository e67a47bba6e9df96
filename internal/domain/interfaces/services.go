package interfaces

import (
	"time"

	domaintypes "credstore/internal/domain/types"
)

// Clock supplies the wall-clock time stamped into new records.
type Clock interface {
	Now() time.Time
}

// CredentialService manages user entries in a credential store.
type CredentialService interface {
	UpsertUser(username domaintypes.Username, password, email string, isAdmin bool) (domaintypes.Record, error)
	Verify(username domaintypes.Username, password string) error
	ResetPassword(username domaintypes.Username, oldPassword, newPassword string) error
	RemoveUser(username domaintypes.Username) error
	ListUsers() ([]domaintypes.UserSummary, error)
}
