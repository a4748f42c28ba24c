package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"tasklist/internal/domain/entity"
	"tasklist/internal/domain/repository"
	"tasklist/internal/infra/persistence/model"
)

// roleRepository implements the repository.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByIDs resolves role ids to roles, ordered by id. Ids with no matching
// row are dropped without error.
func (repo *roleRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var roleModels []model.RoleModel
	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&roleModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find roles by ids")
	}

	roles := make([]entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, entity.Role{ID: roleM.ID, Name: roleM.Name})
	}

	return roles, nil
}
