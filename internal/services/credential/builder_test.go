package credential_test

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credstore/internal/crypto"
	"credstore/internal/services/credential"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{40}$`)

// fixedClock always reports the same instant.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var at = time.Date(2024, 1, 2, 3, 4, 5, 123456789, time.UTC)

func TestBuildEntry_KnownHash(t *testing.T) {
	rec := credential.BuildEntry("pw123", "a@x.com", false, credential.DefaultSalt, at)

	assert.Equal(t, "1c29d54e58b436beeb59ffd5f0e72e2c55355b60", rec.PasswordHash)
	assert.Equal(t, "a@x.com", rec.Email)
	assert.Equal(t, "2024-01-02T03:04:05.123Z", rec.LastModified)
	assert.False(t, rec.IsAdmin)
}

func TestBuildEntry_Deterministic(t *testing.T) {
	a := credential.BuildEntry("secret", "e@x.com", true, "salt", at)
	b := credential.BuildEntry("secret", "e@x.com", true, "salt", at)
	assert.Equal(t, a, b)
}

func TestBuildEntry_TimestampIsPartOfHash(t *testing.T) {
	a := credential.BuildEntry("secret", "e@x.com", false, "salt", at)
	b := credential.BuildEntry("secret", "e@x.com", false, "salt", at.Add(time.Millisecond))
	assert.NotEqual(t, a.PasswordHash, b.PasswordHash)
}

func TestBuildEntry_HashFormat(t *testing.T) {
	for _, pw := range []string{"", "pw", "päss wörd", "🔑"} {
		rec := credential.BuildEntry(pw, "", false, credential.DefaultSalt, time.Now())
		assert.Regexp(t, hexDigest, rec.PasswordHash, "password %q", pw)
	}
}

func TestFormatTimestamp(t *testing.T) {
	east := time.FixedZone("UTC+5", 5*60*60)
	cases := map[string]time.Time{
		"2024-01-02T03:04:05.123Z": at,
		"2024-01-02T03:04:05.000Z": time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		"2024-01-01T22:04:05.120Z": time.Date(2024, 1, 2, 3, 4, 5, 120_000_000, east),
	}
	for want, in := range cases {
		assert.Equal(t, want, credential.FormatTimestamp(in))
	}
}

func TestBuildEntry_AdminFlagSerialisation(t *testing.T) {
	plain, err := json.Marshal(credential.BuildEntry("pw", "u@x.com", false, "s", at))
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "isAdmin")

	admin, err := json.Marshal(credential.BuildEntry("pw", "u@x.com", true, "s", at))
	require.NoError(t, err)
	assert.Contains(t, string(admin), `"isAdmin":true`)
}

func TestBuilder_UsesClockSaltAndDigest(t *testing.T) {
	b := credential.NewBuilder(credential.DefaultSalt, crypto.RIPEMD160, fixedClock{at})

	rec := b.Build("pw123", "a@x.com", true)

	assert.Equal(t, "87f01e0b377529f704eb065cfa902093b2901ff9", rec.PasswordHash)
	assert.Equal(t, "2024-01-02T03:04:05.123Z", rec.LastModified)
	assert.True(t, rec.IsAdmin)
	assert.Equal(t, rec.PasswordHash, b.Hash("pw123", rec.LastModified))
}

func TestBuilder_Defaults(t *testing.T) {
	b := credential.NewBuilder(credential.DefaultSalt, nil, fixedClock{at})
	assert.Equal(t, "1c29d54e58b436beeb59ffd5f0e72e2c55355b60", b.Build("pw123", "", false).PasswordHash)

	before := time.Now().UTC().Truncate(time.Millisecond)
	rec := credential.NewBuilder("s", nil, nil).Build("pw", "", false)
	stamped, err := time.Parse(time.RFC3339Nano, rec.LastModified)
	require.NoError(t, err)
	assert.False(t, stamped.Before(before))
}
