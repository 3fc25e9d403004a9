// Package identity derives stable pseudonymous analytics identifiers from
// user emails.
//
// The identifier is a salted SHA-256 digest: the email bytes are streamed
// into a hash state, followed by the hex digest of a fixed salt. The salt
// ships inside every client build, so it only decorrelates identifiers
// from plain email hashes; it is not a secret.
package identity

import (
	"strings"

	"github.com/asteroid-belt/ymstat/internal/hash"
)

// Salt is the fixed salt mixed into every pseudonymous identifier.
const Salt = "fsdfjsknvvu34630d0@e439(*(&#$lgjdla"

// IDLength is the length of a pseudonymous identifier in hex characters.
const IDLength = 64

// Hasher computes pseudonymous identifiers for a single salt.
type Hasher struct {
	salt string
}

// DefaultHasher uses the fixed Salt.
var DefaultHasher = NewHasher(Salt)

// NewHasher returns a Hasher for salt.
func NewHasher(salt string) Hasher {
	return Hasher{salt: salt}
}

// SaltDigest returns the lowercase hex SHA-256 digest of the salt.
func (h Hasher) SaltDigest() string {
	return hash.SHA256Hex(h.salt)
}

// PseudonymousID returns the 64-character lowercase hex identifier for email.
// The email is fed first and the salt digest (as hex text) second.
// No validation is performed: empty or malformed input still hashes.
func (h Hasher) PseudonymousID(email string) string {
	return hash.StreamSHA256Hex(email, h.SaltDigest())
}

// PseudonymousID computes the identifier for email with DefaultHasher.
func PseudonymousID(email string) string {
	return DefaultHasher.PseudonymousID(email)
}

// ShortID returns a truncated form of a pseudonymous identifier for log lines.
func ShortID(pseudoID string) string {
	return hash.Truncate(pseudoID)
}

// MaskEmail masks an email address for logging purposes.
// Example: "user@example.com" -> "u***@example.com"
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***"
	}

	if len(local) <= 2 {
		return "***@" + domain
	}
	return local[:1] + "***@" + domain
}
