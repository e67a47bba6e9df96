package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credstore/internal/domain"
)

// isolateConfigEnv unsets every CREDSTORE_ variable for the duration of the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvStorePath, EnvSalt, EnvDigest} {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg := LoadConfig()

	assert.Equal(t, "data/auth.json", cfg.StorePath)
	assert.Equal(t, "static_salt", cfg.Salt)
	assert.Equal(t, domain.DigestSHA1, cfg.Digest)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv(EnvStorePath, "/srv/app/auth.json")
	t.Setenv(EnvSalt, "")
	t.Setenv(EnvDigest, "ripemd160")

	cfg := LoadConfig()

	assert.Equal(t, "/srv/app/auth.json", cfg.StorePath)
	assert.Equal(t, "", cfg.Salt)
	assert.Equal(t, domain.DigestRIPEMD160, cfg.Digest)
}

func TestLoadConfig_UnknownDigest(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv(EnvDigest, "md5")

	cfg := LoadConfig()

	assert.Equal(t, domain.DigestName("md5"), cfg.Digest)
	require.ErrorIs(t, cfg.Validate(), domain.ErrUnknownDigest)
	_, err := NewWire(cfg, nil)
	require.ErrorIs(t, err, domain.ErrUnknownDigest)
}

func TestNewWire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	w, err := NewWire(Config{StorePath: path, Salt: "s", Digest: domain.DigestSHA1}, nil)
	require.NoError(t, err)
	assert.Equal(t, path, w.Store.Path())

	_, err = w.Credentials.UpsertUser("alice", "pw", "a@x.com", false)
	require.NoError(t, err)
	require.NoError(t, w.Credentials.Verify("alice", "pw"))
}

func TestNewWire_InvalidConfig(t *testing.T) {
	_, err := NewWire(Config{Digest: domain.DigestSHA1}, nil)
	require.Error(t, err)
}
