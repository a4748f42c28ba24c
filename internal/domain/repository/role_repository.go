package repository

import (
	"context"

	"tasklist/internal/domain/entity"
)

// RoleRepository defines read access to the pre-seeded role table.
type RoleRepository interface {
	// FindByIDs resolves the given role ids to roles, ordered by id.
	// Unknown ids are silently dropped; they are not an error.
	FindByIDs(ctx context.Context, ids []uint) ([]entity.Role, error)
}
