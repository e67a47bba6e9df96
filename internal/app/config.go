package app

import (
	"fmt"
	"os"

	"credstore/internal/crypto"
	"credstore/internal/domain"
	"credstore/internal/services/credential"
)

// Environment variables read by LoadConfig.
const (
	EnvStorePath = "CREDSTORE_STORE_PATH"
	EnvSalt      = "CREDSTORE_SALT"
	EnvDigest    = "CREDSTORE_DIGEST"
)

// DefaultStorePath is relative to the working directory, next to the
// application that reads it.
const DefaultStorePath = "data/auth.json"

// Config holds runtime wiring options for building the app.
type Config struct {
	StorePath string            // credential file, e.g. data/auth.json
	Salt      string            // shared salt mixed into every hash
	Digest    domain.DigestName // sha1 or ripemd160
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults: CREDSTORE_STORE_PATH (data/auth.json), CREDSTORE_SALT
// (static_salt), CREDSTORE_DIGEST (sha1). An empty salt is allowed when set
// explicitly. Values are not validated here so that callers can apply
// overrides first; NewWire validates the final Config.
func LoadConfig() Config {
	cfg := Config{
		StorePath: DefaultStorePath,
		Salt:      credential.DefaultSalt,
		Digest:    domain.DigestSHA1,
	}
	if v, ok := os.LookupEnv(EnvStorePath); ok && v != "" {
		cfg.StorePath = v
	}
	if v, ok := os.LookupEnv(EnvSalt); ok {
		cfg.Salt = v
	}
	if v, ok := os.LookupEnv(EnvDigest); ok && v != "" {
		cfg.Digest = domain.DigestName(v)
	}
	return cfg
}

// Validate reports configuration that cannot be wired.
func (c Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("store path must not be empty")
	}
	if _, err := crypto.Lookup(c.Digest); err != nil {
		return fmt.Errorf("digest: %w", err)
	}
	return nil
}
