// Package entity contains the core business objects of the project.
package entity

// Role is a named permission group referenced by role assignments.
// Roles are pre-seeded at startup and immutable afterwards.
type Role struct {
	ID   uint   // Numeric identifier, stable across deployments.
	Name string // Display name, e.g. "Admin" or "User".
}

// Seeded role identifiers. The seed runs at startup and is idempotent.
const (
	RoleIDAdmin uint = 1
	RoleIDUser  uint = 2
)

// Seeded role names.
const (
	RoleNameAdmin = "Admin"
	RoleNameUser  = "User"
)

// DefaultRoleName is the role claim emitted when a user holds no assignments.
const DefaultRoleName = RoleNameUser

// SeededRoles returns the roles every deployment starts with.
func SeededRoles() []Role {
	return []Role{
		{ID: RoleIDAdmin, Name: RoleNameAdmin},
		{ID: RoleIDUser, Name: RoleNameUser},
	}
}

// RoleAssignment is the join entity granting a user a specific role.
// The composite key is (UserEmail, RoleID). A user may hold multiple roles
// and a role may be held by multiple users.
type RoleAssignment struct {
	UserEmail string
	RoleID    uint
}
