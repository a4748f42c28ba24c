package auth

import (
	"tasklist/config"
	"tasklist/internal/domain/service"
	"tasklist/internal/errors"
)

// Recognized values for auth.hashScheme.
const (
	HashSchemeSHA256 = "sha256"
	HashSchemeBcrypt = "bcrypt"
)

// NewPasswordHasher selects the configured password digest scheme.
// The default is sha256 to keep existing stored digests verifiable.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	scheme := HashSchemeSHA256
	bcryptCost := 0
	if cfg.Auth != nil {
		if cfg.Auth.HashScheme != "" {
			scheme = cfg.Auth.HashScheme
		}
		bcryptCost = cfg.Auth.BcryptCost
	}

	switch scheme {
	case HashSchemeSHA256:
		return NewSHA256Hasher(), nil
	case HashSchemeBcrypt:
		return NewBcryptHasher(bcryptCost), nil
	default:
		return nil, errors.Errorf("unknown password hash scheme: %s", scheme)
	}
}
