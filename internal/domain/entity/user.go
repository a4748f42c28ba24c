// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity of the system. The email address is the unique
// identifier; there is no surrogate key. PasswordHash stores the one-way
// digest of the password and is never empty once the user exists.
type User struct {
	Email        string    // Unique login identifier, case-sensitive as stored.
	PasswordHash string    // One-way digest of the password, never the plaintext.
	Roles        []Role    // Roles granted to this user, ordered by role id.
	Tasks        []Task    // Tasks owned by this user.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// RoleNames returns the ordered role names granted to the user.
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, role := range u.Roles {
		names[i] = role.Name
	}

	return names
}
