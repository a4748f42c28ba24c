package postgres

import (
	"context"
	"log/slog"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tasklist/config"
	"tasklist/internal/domain/entity"
	"tasklist/internal/domain/lifecycle"
	"tasklist/internal/errors"
	"tasklist/internal/infra/persistence/model"
)

// Params defines the required parameters.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client and registers its lifecycle hooks.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction. Multi-step
		// atomic operations go through txManager.Execute instead.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := migrateAndSeed(ctx, db); err != nil {
				return errors.Wrap(err, "failed to prepare schema")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// migrateAndSeed keeps the schema current and ensures the fixed roles exist.
// The seed is idempotent; conflicting rows are left untouched.
func migrateAndSeed(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.RoleModel{},
		&model.UserModel{},
		&model.UserRoleModel{},
		&model.TaskModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}

	seeded := entity.SeededRoles()
	roleModels := make([]model.RoleModel, 0, len(seeded))
	for _, role := range seeded {
		roleModels = append(roleModels, model.RoleModel{ID: role.ID, Name: role.Name})
	}

	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&roleModels).Error; err != nil {
		return errors.Wrap(err, "seed roles failed")
	}

	return nil
}
