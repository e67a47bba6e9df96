package app

import (
	"log/slog"

	"credstore/internal/crypto"
	"credstore/internal/domain"
	"credstore/internal/services/credential"
	"credstore/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Config      Config
	Store       domain.CredentialStore
	Credentials domain.CredentialService
	Log         *slog.Logger
}

// NewWire constructs the dependency graph from cfg. A nil logger discards output.
func NewWire(cfg Config, logger *slog.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	digest, err := crypto.Lookup(cfg.Digest)
	if err != nil {
		return nil, err
	}

	// File-based store
	credStore := store.NewCredentialFileStore(cfg.StorePath, logger.With("component", "store"))

	// High-level services
	builder := credential.NewBuilder(cfg.Salt, digest, nil)
	credSvc := credential.New(credStore, builder, logger.With("component", "credential"))

	return &Wire{
		Config:      cfg,
		Store:       credStore,
		Credentials: credSvc,
		Log:         logger,
	}, nil
}
