package usecase

import "context"

// UserOutput is the user directory shape returned to the delivery layer.
// The password digest never leaves the use case layer.
type UserOutput struct {
	Email string
	Roles []string
	Tasks []*TaskOutput
}

// UserUsecase defines the interface for the user directory operations.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*UserOutput, error)
	GetUser(ctx context.Context, email string) (*UserOutput, error)
}
