package domain

import (
	interfaces "credstore/internal/domain/interfaces"
	types "credstore/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username    = types.Username
	DigestName  = types.DigestName
	Record      = types.Record
	Credentials = types.Credentials
	UserSummary = types.UserSummary
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Clock             = interfaces.Clock
	CredentialStore   = interfaces.CredentialStore
	CredentialService = interfaces.CredentialService
)

const (
	DigestSHA1      = types.DigestSHA1
	DigestRIPEMD160 = types.DigestRIPEMD160
	TimestampLayout = types.TimestampLayout
)
