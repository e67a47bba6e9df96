package types

import (
	"encoding/json"
	"fmt"
)

// TimestampLayout formats last-modified dates: UTC, millisecond precision and a
// literal Z suffix (2024-01-02T03:04:05.123Z).
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Record is one user's entry in the credential store.
//
// The timestamp is part of the digest input, so a verifier must hash with
// LastModified exactly as stored.
type Record struct {
	PasswordHash string `json:"password"`
	Email        string `json:"email"`
	LastModified string `json:"last_modified_date"`
	IsAdmin      bool   `json:"isAdmin,omitempty"`
}

// Credentials maps usernames to their entries as raw JSON. Entries are only
// decoded on access, so fields and value types written by other tools survive
// a rewrite of the file.
type Credentials map[string]json.RawMessage

// Record decodes the entry for username.
func (c Credentials) Record(username string) (Record, bool, error) {
	raw, ok := c[username]
	if !ok {
		return Record{}, false, nil
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, true, fmt.Errorf("decoding entry %q: %w", username, err)
	}
	return rec, true, nil
}

// SetRecord replaces the entry for username with rec.
func (c Credentials) SetRecord(username string, rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	c[username] = raw
	return nil
}

// SetFields overwrites the named fields of an existing object entry and keeps
// every other field as stored.
func (c Credentials) SetFields(username string, fields map[string]any) error {
	obj := make(map[string]json.RawMessage)
	if raw, ok := c[username]; ok {
		if err := json.Unmarshal(raw, &obj); err != nil {
			return fmt.Errorf("decoding entry %q: %w", username, err)
		}
		if obj == nil {
			obj = make(map[string]json.RawMessage)
		}
	}
	for k, v := range fields {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		obj[k] = b
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	c[username] = raw
	return nil
}

// UserSummary is a record without its password hash, for listings.
type UserSummary struct {
	Username     Username `json:"username" yaml:"username"`
	Email        string   `json:"email" yaml:"email"`
	LastModified string   `json:"last_modified_date" yaml:"last_modified_date"`
	IsAdmin      bool     `json:"isAdmin" yaml:"isAdmin"`
}
