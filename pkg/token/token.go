// Package token generates the opaque bearer tokens handed out at login.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ByteLength is the number of random bytes per token. Hex encoding doubles it
// on the wire, so clients see 64-character strings carrying 256 bits of
// entropy.
const ByteLength = 32

// EncodedLength is the length of a generated token string.
const EncodedLength = ByteLength * 2

// Generate returns a new cryptographically random session token. The token is
// pure randomness: nothing about the user is derivable from it.
func Generate() (string, error) {
	buf := make([]byte, ByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
