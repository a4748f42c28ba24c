package model

import "time"

// TaskModel mirrors the 'tasks' table. Each row belongs to exactly one user.
type TaskModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserEmail string `gorm:"type:varchar(255);not null;index"`
	Title     string `gorm:"type:varchar(255);not null"`
	Completed bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
