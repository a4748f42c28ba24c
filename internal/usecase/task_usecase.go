package usecase

import "context"

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	UserEmail string
	Title     string
	Completed bool
}

// UpdateTaskInput defines the data required to update a task.
type UpdateTaskInput struct {
	ID        uint
	UserEmail string
	Title     string
	Completed bool
}

// TaskOutput is the task shape returned to the delivery layer.
type TaskOutput struct {
	ID        uint
	UserEmail string
	Title     string
	Completed bool
}

// TaskUsecase defines the interface for task CRUD operations.
type TaskUsecase interface {
	ListTasks(ctx context.Context) ([]*TaskOutput, error)
	GetTask(ctx context.Context, id uint) (*TaskOutput, error)
	CreateTask(ctx context.Context, input *CreateTaskInput) (*TaskOutput, error)
	UpdateTask(ctx context.Context, input *UpdateTaskInput) error
	DeleteTask(ctx context.Context, id uint) error
}
