package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
database:
  dbname: complaints_test
jwt:
  secret: file-secret
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "complaints_test", cfg.Database.DBName)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)

	// untouched keys keep their defaults
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenTTL())
	assert.Equal(t, "college-complaints", cfg.JWT.Issuer)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: file-secret
database:
  max_open_conns: 10
`)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_MAX_OPEN_CONNS", "42")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "2h")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 42, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2*time.Hour, cfg.AccessTokenTTL())
}

func TestLoadConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "only-env")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "only-env", cfg.JWT.Secret)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "no secret", body: "server:\n  port: \"1\"\n"},
		{name: "bad expiration", body: "jwt:\n  secret: s\n  access_token_expiration: forever\n"},
		{name: "bad env int", body: "jwt:\n  secret: s\n", env: map[string]string{"DB_MAX_OPEN_CONNS": "many"}},
		{name: "half an admin", body: "jwt:\n  secret: s\nadmin:\n  default_username: root\n"},
		{name: "broken yaml", body: "jwt: [secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{}
	cfg.Server.CORSOrigins = " http://a.test , ,http://b.test"
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "app"
	cfg.Database.Password = "p@ss:word"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5432"
	cfg.Database.DBName = "complaints"

	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/complaints?sslmode=disable", cfg.GetPostgresConnectionString())
}
