// Package store provides file-based persistence for the credential store.
//
// CredentialFileStore serialises the whole username to record mapping as
// indented JSON in a single file. Every update is a full load, mutate, save
// cycle; saves replace the file atomically via a temp file and rename.
//
// Update cycles hold an advisory exclusive lock on the store's directory
// (flock on unix systems) so concurrent operators do not lose each other's
// writes. Loads take a shared lock on it.
//
// Entries are kept as raw JSON, so fields this package does not know survive
// an update. A store file that does not parse as a JSON object is treated as
// empty and overwritten by the next update; a warning is logged when that
// happens. Existing files keep their permissions; new ones are created 0600.
package store
