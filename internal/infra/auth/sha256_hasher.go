// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"tasklist/internal/domain/service"
)

// sha256Hasher digests passwords with a single unsalted SHA-256 pass,
// base64-encoded. This matches the digests already stored by earlier
// deployments and MUST stay bit-compatible with them.
//
// SECURITY: unsalted single-pass hashing is weak against precomputed and
// brute-force attacks. Switching to bcrypt (see bcryptHasher) changes the
// stored digest format and invalidates existing credentials, so it is only
// enabled through auth.hashScheme, never silently.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// Hash returns the base64 encoding of the SHA-256 digest of the password.
// Deterministic, pure, error is always nil.
func (h *sha256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))

	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// Check recomputes the digest of the candidate and compares it against the
// stored digest in constant time.
func (h *sha256Hasher) Check(password, digest string) bool {
	computed, _ := h.Hash(password)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
