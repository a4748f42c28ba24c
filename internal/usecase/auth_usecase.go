// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// RoleIDs is optional; unknown ids are ignored rather than rejected.
type RegisterInput struct {
	Email    string
	Password string
	RoleIDs  []uint
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput carries the issued bearer token. Registration and login return
// nothing else; identity data is never echoed back.
type TokenOutput struct {
	Token string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
}
