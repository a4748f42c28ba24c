// Package impl contains the implementation of the application's business logic.
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
	"tasklist/internal/domain/service"
	"tasklist/internal/usecase"
)

// authService implements the AuthUsecase interface. It orchestrates the
// identity store, the credential hasher and the token issuer; it holds no
// mutable state of its own and is safe under unlimited concurrency.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. The user row and
// its role assignments are created in one transaction; a failure leaves no
// orphaned rows behind.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var roleNames []string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		roleRepo := repoFactory.RoleRepo()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if exists {
			return domainerrors.ErrEmailTaken.WrapMessage("registration failed")
		}

		// Resolve the caller-supplied role ids. Unknown ids are dropped,
		// not rejected.
		roles, err := roleRepo.FindByIDs(ctx, input.RoleIDs)
		if err != nil {
			return errors.Wrap(err, "failed to resolve role ids")
		}

		assignments := make([]entity.RoleAssignment, 0, len(roles))
		for _, role := range roles {
			assignments = append(assignments, entity.RoleAssignment{
				UserEmail: input.Email,
				RoleID:    role.ID,
			})
		}

		newUser := &entity.User{
			Email:        input.Email,
			PasswordHash: digest,
		}
		if err := userRepo.Create(ctx, newUser, assignments); err != nil {
			return errors.WithStack(err)
		}

		// Read the assignments back from the store so the claim names come
		// from committed rows, never from caller-echoed data.
		committed, err := userRepo.ListRoles(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to list roles after create")
		}
		for _, role := range committed {
			roleNames = append(roleNames, role.Name)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	token, err := srv.tokenService.Generate(input.Email, roleNames)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("email", input.Email))

	// The response carries only the token; identity data is never echoed back.
	return &usecase.TokenOutput{Token: token}, nil
}

// Login verifies the credentials and issues a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Hash the attempt anyway so a missing account costs the same
			// as a wrong password.
			srv.hasher.Check(input.Password, "")

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Generate(user.Email, user.RoleNames())
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after login")
	}

	srv.log(ctx).Debug("Login completed", slog.String("email", input.Email))

	return &usecase.TokenOutput{Token: token}, nil
}
