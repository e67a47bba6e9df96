package credential

import (
	"time"

	"credstore/internal/crypto"
	"credstore/internal/domain"
)

// DefaultSalt is the salt shared by every record unless configured otherwise.
const DefaultSalt = "static_salt"

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Builder produces records with a fixed salt, digest and clock.
type Builder struct {
	salt   string
	digest crypto.Digest
	clock  domain.Clock
}

// NewBuilder returns a Builder. A nil digest means SHA-1 and a nil clock means
// the system clock.
func NewBuilder(salt string, digest crypto.Digest, clock domain.Clock) *Builder {
	if digest == nil {
		digest = crypto.SHA1
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Builder{salt: salt, digest: digest, clock: clock}
}

// Build returns a record for password stamped with the current time.
func (b *Builder) Build(password, email string, isAdmin bool) domain.Record {
	return buildEntry(b.digest, password, email, isAdmin, b.salt, b.clock.Now())
}

// Hash recomputes the password hash for a record last modified at timestamp.
func (b *Builder) Hash(password, timestamp string) string {
	return HashPassword(b.digest, b.salt, password, timestamp)
}

// BuildEntry returns the SHA-1 record for password hashed with salt at time at.
func BuildEntry(password, email string, isAdmin bool, salt string, at time.Time) domain.Record {
	return buildEntry(crypto.SHA1, password, email, isAdmin, salt, at)
}

func buildEntry(d crypto.Digest, password, email string, isAdmin bool, salt string, at time.Time) domain.Record {
	timestamp := FormatTimestamp(at)
	return domain.Record{
		PasswordHash: HashPassword(d, salt, password, timestamp),
		Email:        email,
		LastModified: timestamp,
		IsAdmin:      isAdmin,
	}
}

// HashPassword digests salt + password + timestamp as UTF-8 bytes.
func HashPassword(d crypto.Digest, salt, password, timestamp string) string {
	return crypto.Sum(d, []byte(salt+password+timestamp))
}

// FormatTimestamp renders t in UTC with millisecond precision and a Z suffix.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(domain.TimestampLayout)
}
