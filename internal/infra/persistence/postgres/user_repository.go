// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves a single user by email, preloading role assignments and tasks.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("UserRoles", orderByRoleID).
		Preload("UserRoles.Role").
		Preload("Tasks").
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ExistsByEmail reports whether a user with the given email exists.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, errors.Wrap(err, "failed to count users by email")
	}

	return count > 0, nil
}

// Create persists a new user row together with its role assignment rows.
// GORM inserts the associations in the same statement batch, so inside a
// transaction the user and its assignments commit together or not at all.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, assignments []entity.RoleAssignment) error {
	userM := &model.UserModel{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		UserRoles:    make([]model.UserRoleModel, 0, len(assignments)),
	}
	for _, assignment := range assignments {
		userM.UserRoles = append(userM.UserRoles, model.UserRoleModel{
			UserEmail: assignment.UserEmail,
			RoleID:    assignment.RoleID,
		})
	}

	// Omit Role so the seeded roles table is never written through the
	// association.
	if err := repo.db.WithContext(ctx).Omit("UserRoles.Role").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// ListRoles returns the roles assigned to the user, ordered by role id.
// When run on a transaction-bound repository it sees assignments created by
// that same transaction.
func (repo *userRepository) ListRoles(ctx context.Context, email string) ([]entity.Role, error) {
	var roleModels []model.RoleModel
	err := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_email = ?", email).
		Order("roles.id").
		Find(&roleModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles for user")
	}

	roles := make([]entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, entity.Role{ID: roleM.ID, Name: roleM.Name})
	}

	return roles, nil
}

// List returns all users with roles and tasks loaded.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("UserRoles", orderByRoleID).
		Preload("UserRoles.Role").
		Preload("Tasks").
		Order("email").
		Find(&userModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUserDomain(&userModels[i]))
	}

	return users, nil
}

func orderByRoleID(db *gorm.DB) *gorm.DB {
	return db.Order("user_roles.role_id")
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	roles := make([]entity.Role, 0, len(data.UserRoles))
	for _, userRole := range data.UserRoles {
		roles = append(roles, entity.Role{
			ID:   userRole.Role.ID,
			Name: userRole.Role.Name,
		})
	}

	tasks := make([]entity.Task, 0, len(data.Tasks))
	for _, taskM := range data.Tasks {
		tasks = append(tasks, *toTaskDomain(&taskM))
	}

	return &entity.User{
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Roles:        roles,
		Tasks:        tasks,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
