// Package entity contains the core business objects of the project.
package entity

import "time"

// Task is a single todo item exclusively owned by one user.
type Task struct {
	ID        uint      // Unique identifier, assigned by the store.
	UserEmail string    // Email of the owning user.
	Title     string    // Short description of the task.
	Completed bool      // Whether the task is done.
	CreatedAt time.Time // Timestamp of when this task was created.
	UpdatedAt time.Time // Timestamp of the last modification to this task.
}
