// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing scheme, keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a digest from a plaintext password. Any input, including
	// the empty string, produces a digest.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored digest. It never
	// fails; a malformed digest simply does not match.
	Check(password, digest string) bool
}
