package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"jwt": map[string]any{
			"expiresInMinutes": 60,
			"key":              "",
		},
		"auth": map[string]any{
			"hashScheme": "sha256",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "JWT_KEY", want: "jwt.key"},
		{envKey: "JWT_EXPIRESINMINUTES", want: "jwt.expiresInMinutes"},
		{envKey: "AUTH_HASHSCHEME", want: "auth.hashScheme"},
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_AppliesJWTSection(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
env:
  env: test
  serviceName: tasklist
  log:
    level: info
jwt:
  key: unit-test-secret
  issuer: tasklist
  audience: tasklist-clients
  expiresInMinutes: 45
auth:
  hashScheme: sha256
`)

	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv failed: %v", err)
	}

	if cfg.JWT == nil {
		t.Fatal("expected jwt section to be loaded")
	}
	if cfg.JWT.Key != "unit-test-secret" {
		t.Errorf("jwt.key = %q, want %q", cfg.JWT.Key, "unit-test-secret")
	}
	if cfg.JWT.Issuer != "tasklist" {
		t.Errorf("jwt.issuer = %q, want %q", cfg.JWT.Issuer, "tasklist")
	}
	if cfg.JWT.ExpiresInMinutes != 45 {
		t.Errorf("jwt.expiresInMinutes = %d, want 45", cfg.JWT.ExpiresInMinutes)
	}
	if cfg.Auth == nil || cfg.Auth.HashScheme != "sha256" {
		t.Errorf("auth.hashScheme not loaded: %+v", cfg.Auth)
	}
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}
