package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/config"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT = &config.JWTConfig{
		Key:              "test_signing_key_very_long_for_testing",
		Issuer:           "tasklist",
		Audience:         "tasklist-clients",
		ExpiresInMinutes: 60,
	}

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, err := svc.Generate("admin@example.com", []string{"Admin", "User"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.Equal(t, []string{"Admin", "User"}, claims.Roles)
	assert.Equal(t, "tasklist", claims.Issuer)
	assert.Contains(t, claims.Audience, "tasklist-clients")
}

func TestJWTService_DefaultRoleClaim(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	// No resolved roles: exactly one "User" claim is emitted.
	token, err := svc.Generate("a@x.com", nil)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"User"}, claims.Roles)
}

func TestJWTService_ExpiryMatchesConfiguredLifetime(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.ExpiresInMinutes = 1

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.Generate("a@x.com", nil)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_RejectsWrongKey(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.JWT.Key = "a_completely_different_signing_key"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := svc.Generate("a@x.com", nil)
	require.NoError(t, err)

	claims, err := otherSvc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingKeyFailsFast(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.Key = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt signing key must be provided")
}
