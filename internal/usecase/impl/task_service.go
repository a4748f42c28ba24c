package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "tasklist/internal/delivery/context"
	"tasklist/internal/domain/entity"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/domain/repository"
	"tasklist/internal/usecase"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo: params.TaskRepo,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTasks returns every task.
func (srv *taskService) ListTasks(ctx context.Context) ([]*usecase.TaskOutput, error) {
	tasks, err := srv.taskRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	outputs := make([]*usecase.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		outputs = append(outputs, toTaskOutput(task))
	}

	return outputs, nil
}

// GetTask returns a single task by id.
func (srv *taskService) GetTask(ctx context.Context, id uint) (*usecase.TaskOutput, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	return toTaskOutput(task), nil
}

// CreateTask validates that the owning user exists and persists the task.
func (srv *taskService) CreateTask(ctx context.Context, input *usecase.CreateTaskInput) (*usecase.TaskOutput, error) {
	exists, err := srv.userRepo.ExistsByEmail(ctx, input.UserEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check task owner")
	}
	if !exists {
		return nil, domainerrors.ErrTaskOwnerNotFound.WrapMessage("task creation failed")
	}

	task := &entity.Task{
		UserEmail: input.UserEmail,
		Title:     input.Title,
		Completed: input.Completed,
	}
	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.String("owner", input.UserEmail), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("Task created", slog.Uint64("taskID", uint64(task.ID)), slog.String("owner", task.UserEmail))

	return toTaskOutput(task), nil
}

// UpdateTask overwrites an existing task's owner, title and completion flag.
func (srv *taskService) UpdateTask(ctx context.Context, input *usecase.UpdateTaskInput) error {
	task := &entity.Task{
		ID:        input.ID,
		UserEmail: input.UserEmail,
		Title:     input.Title,
		Completed: input.Completed,
	}

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound.WrapMessage("task update failed")
		}

		return errors.Wrap(err, "failed to update task")
	}

	return nil
}

// DeleteTask removes a task by id.
func (srv *taskService) DeleteTask(ctx context.Context, id uint) error {
	if err := srv.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound.WrapMessage("task deletion failed")
		}

		return errors.Wrap(err, "failed to delete task")
	}

	return nil
}

func toTaskOutput(task *entity.Task) *usecase.TaskOutput {
	return &usecase.TaskOutput{
		ID:        task.ID,
		UserEmail: task.UserEmail,
		Title:     task.Title,
		Completed: task.Completed,
	}
}
