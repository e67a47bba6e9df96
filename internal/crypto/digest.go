package crypto

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // legacy 160-bit digest, kept for interop

	"credstore/internal/domain"
)

// DigestSize is the output length in bytes of every supported digest.
const DigestSize = 20

// Digest constructs a fresh hash.Hash producing DigestSize bytes.
type Digest func() hash.Hash

// Supported digests.
var (
	SHA1      Digest = sha1.New
	RIPEMD160 Digest = ripemd160.New
)

var digests = map[domain.DigestName]Digest{
	domain.DigestSHA1:      SHA1,
	domain.DigestRIPEMD160: RIPEMD160,
}

// Lookup returns the digest registered under name.
func Lookup(name domain.DigestName) (Digest, error) {
	d, ok := digests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDigest, name)
	}
	return d, nil
}

// Sum hashes data with d and returns the lowercase hex encoding.
func Sum(d Digest, data []byte) string {
	h := d()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Equal reports whether two hex digests match, in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
