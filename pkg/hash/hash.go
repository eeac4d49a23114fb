// Package hash handles the stored password material. The scheme is an
// unsalted hex-encoded SHA-256 digest, kept compatible with the existing
// credential rows; changing it would invalidate every account.
package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the digest to store for a password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password matches the stored digest. The
// comparison is constant-time.
func VerifyPassword(password, storedHash string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
