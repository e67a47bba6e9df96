// Package credential builds credential records and manages them in a store.
//
// A record's password hash is the hex digest of salt + password + timestamp,
// where timestamp is the record's last_modified_date. The salt is one shared
// configured value, not per-user random data, and the timestamp must be kept
// verbatim for the hash to be verifiable later.
//
// Service runs each operation as a single load, mutate, save cycle against a
// domain.CredentialStore.
package credential
