// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tasklist/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by email, with roles and tasks loaded.
	// Returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user together with its role assignments. The user
	// row and the assignment rows commit together or not at all.
	Create(ctx context.Context, user *entity.User, assignments []entity.RoleAssignment) error

	// ListRoles returns the roles assigned to the user, ordered by role id.
	// Within a transaction it reflects assignments created by the same
	// transaction, so a registration can read back what it just wrote.
	ListRoles(ctx context.Context, email string) ([]entity.Role, error)

	// List returns all users with their roles and tasks loaded.
	List(ctx context.Context) ([]*entity.User, error)
}
