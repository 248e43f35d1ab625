package pkce

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// verifierLength is the entropy of the code verifier in bytes. 32 bytes
// yields a 43-character URL-safe string, within RFC 7636's 43..128 bounds.
const verifierLength = 32

// GenerateCodeVerifier returns a cryptographically random, URL-safe,
// unpadded base64 verifier
func GenerateCodeVerifier() (string, error) {
	buf := make([]byte, verifierLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate code verifier: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateCodeChallenge derives the S256 challenge for a verifier:
// URL-safe base64 of SHA-256(verifier), no padding. Deterministic.
func GenerateCodeChallenge(verifier string) string {
	digest := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(digest[:])
}

// GenerateState returns a random anti-CSRF correlator
func GenerateState() string {
	return uuid.NewString()
}
