package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"tasklist/internal/domain/entity"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/domain/repository"
	"tasklist/internal/infra/persistence/model"
)

// taskRepository implements the repository.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// List returns all tasks ordered by id.
func (repo *taskRepository) List(ctx context.Context) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	err := repo.db.WithContext(ctx).Order("id").Find(&taskModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, toTaskDomain(&taskModels[i]))
	}

	return tasks, nil
}

// FindByID retrieves a single task by its id.
func (repo *taskRepository) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	var taskM model.TaskModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&taskM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// Create persists a new task and writes the generated id back to the entity.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTaskOwnerNotFound.WrapMessage("owning user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Update modifies an existing task row.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{
			"user_email": taskM.UserEmail,
			"title":      taskM.Title,
			"completed":  taskM.Completed,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task by its id.
func (repo *taskRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TaskModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:        data.ID,
		UserEmail: data.UserEmail,
		Title:     data.Title,
		Completed: data.Completed,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:        data.ID,
		UserEmail: data.UserEmail,
		Title:     data.Title,
		Completed: data.Completed,
	}
}
