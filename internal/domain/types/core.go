package types

// Username keys a credential record in the store.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// DigestName names a supported 160-bit password digest.
type DigestName string

// String returns the string form of the digest name.
func (d DigestName) String() string { return string(d) }

const (
	// DigestSHA1 is the digest the consuming web application verifies with.
	DigestSHA1 DigestName = "sha1"
	// DigestRIPEMD160 is an alternative digest of the same output length.
	DigestRIPEMD160 DigestName = "ripemd160"
)
