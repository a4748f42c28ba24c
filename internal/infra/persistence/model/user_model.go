// Package model holds the GORM persistence models mirroring the database schema.
package model

import "time"

// UserModel mirrors the 'users' table. Email is the primary key; the unique
// constraint is what makes concurrent registration of the same email safe.
type UserModel struct {
	Email        string `gorm:"type:varchar(255);primaryKey"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	UserRoles []UserRoleModel `gorm:"foreignKey:UserEmail;references:Email"`
	Tasks     []TaskModel     `gorm:"foreignKey:UserEmail;references:Email"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
