package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by the bearer tokens.
// The subject is the user's email; Roles holds the ordered role names.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed, time-bounded token for the given subject.
	// When roles is empty, the token carries the single default "User" claim.
	Generate(email string, roles []string) (string, error)

	// Validate checks the signature, issuer, audience and lifetime of a
	// token string and returns its claims. Consumed by the HTTP middleware,
	// not by the auth use cases.
	Validate(tokenString string) (*Claims, error)
}
