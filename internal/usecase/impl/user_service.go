package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"tasklist/internal/domain/entity"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/domain/repository"
	"tasklist/internal/usecase"
)

// userService implements the UserUsecase interface, the read-only user
// directory.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// ListUsers returns all users with their roles and tasks.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, toUserOutput(user))
	}

	return outputs, nil
}

// GetUser returns a single user by email.
func (srv *userService) GetUser(ctx context.Context, email string) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserOutput(user), nil
}

// toUserOutput maps a user entity to the directory shape. The password
// digest stays behind.
func toUserOutput(user *entity.User) *usecase.UserOutput {
	tasks := make([]*usecase.TaskOutput, 0, len(user.Tasks))
	for i := range user.Tasks {
		tasks = append(tasks, toTaskOutput(&user.Tasks[i]))
	}

	return &usecase.UserOutput{
		Email: user.Email,
		Roles: user.RoleNames(),
		Tasks: tasks,
	}
}
