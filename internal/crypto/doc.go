// Package crypto exposes the minimal digest primitives used by credstore.
//
// Contents
//
//   - 160-bit password digests selectable by name (Lookup, Sum)
//   - Constant-time comparison of hex digests (Equal)
//
// # Notes
//
// Both digests are legacy, unkeyed and fast. They are kept because the
// consuming application verifies SHA-1 hashes; they are not a recommendation
// for new password storage.
package crypto
