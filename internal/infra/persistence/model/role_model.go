package model

// RoleModel mirrors the 'roles' table. Rows are seeded at startup and not
// mutated afterwards.
type RoleModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// UserRoleModel mirrors the 'user_roles' join table with its composite
// primary key (user_email, role_id).
type UserRoleModel struct {
	UserEmail string `gorm:"type:varchar(255);primaryKey"`
	RoleID    uint   `gorm:"primaryKey"`

	Role RoleModel `gorm:"foreignKey:RoleID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}
