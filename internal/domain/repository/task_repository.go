package repository

import (
	"context"
	"errors"

	"tasklist/internal/domain/entity"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard CRUD operations for task persistence.
type TaskRepository interface {
	// List returns all tasks.
	List(ctx context.Context) ([]*entity.Task, error)

	// FindByID retrieves a single task by its id.
	// Returns ErrTaskNotFound when no such task exists.
	FindByID(ctx context.Context, id uint) (*entity.Task, error)

	// Create persists a new task and fills in the generated id.
	Create(ctx context.Context, task *entity.Task) error

	// Update modifies an existing task.
	// Returns ErrTaskNotFound when no such task exists.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task by its id.
	// Returns ErrTaskNotFound when no such task exists.
	Delete(ctx context.Context, id uint) error
}
