// Package hash provides shared SHA-256 helpers rendered as lowercase hex.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// IDLength is the number of hex characters used for truncated hash IDs.
// 16 hex chars = 8 bytes = 64 bits of entropy (sufficient for log correlation).
const IDLength = 16

// SHA256Hex returns the full lowercase hex SHA-256 digest of data.
func SHA256Hex(data string) string {
	h := sha256.Sum256([]byte(data))
	return hex.EncodeToString(h[:])
}

// StreamSHA256Hex feeds every part, in order, into a single SHA-256 state
// and returns the finalized digest as lowercase hex.
// Order matters: StreamSHA256Hex("a", "b") != StreamSHA256Hex("b", "a")
// unless the parts are equal.
func StreamSHA256Hex(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		_, _ = io.WriteString(h, p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Truncate shortens a hex digest to IDLength characters.
// Inputs already that short are returned unchanged.
func Truncate(hexDigest string) string {
	if len(hexDigest) <= IDLength {
		return hexDigest
	}
	return hexDigest[:IDLength]
}
