package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tasklist/config"
	"tasklist/internal/domain/entity"
	"tasklist/internal/domain/service"
	"tasklist/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface
// using HS256-signed JWTs. The signing configuration is captured once at
// construction and is immutable afterwards.
type jwtService struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewJWTService is the constructor for jwtService. A missing signing key is
// a startup failure, not a per-request one.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Key == "" {
		return nil, errors.New("jwt signing key must be provided")
	}

	expiresInMinutes := cfg.JWT.ExpiresInMinutes
	if expiresInMinutes <= 0 {
		expiresInMinutes = config.DefaultJWTExpiresInMinutes
	}

	return &jwtService{
		key:      []byte(cfg.JWT.Key),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		ttl:      time.Duration(expiresInMinutes) * time.Minute,
	}, nil
}

// Generate creates a signed token with subject, role, issuer, audience,
// issued-at and expiry claims. A user without assignments gets exactly the
// default "User" role claim.
func (s *jwtService) Generate(email string, roles []string) (string, error) {
	if len(roles) == 0 {
		roles = []string{entity.DefaultRoleName}
	}

	now := time.Now()
	claims := service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature, issuer, audience and lifetime of a token
// string and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Reject tokens signed with anything but the expected HMAC family.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.key, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	return claims, nil
}
