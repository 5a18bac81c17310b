package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// DefaultPasswordHash is the hash substituted when no password has been set
// yet. It is the SHA-256 digest of "123".
const DefaultPasswordHash = "a665a45920422f9d417e4867efdc4fb8a04a1f3fff1fa07e998e86f7f7a27ae3"

// HashPassword returns the hex-encoded SHA-256 digest of the password. The
// stored credential format is a plain unsalted digest; this is an access gate
// for a local single-user tool, not a security boundary.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPasswordHash compares a plaintext password against a stored hex digest.
func CheckPasswordHash(password, hash string) bool {
	return HashPassword(password) == hash
}
