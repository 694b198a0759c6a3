package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  readTimeout: 5
database:
  driver: sqlite
  database: vault.db
  queryTimeout: 2
logger:
  level: debug
  format: console
auth:
  signingSecret: file-secret
  tokenTTL: 60
  initDataMaxAge: 3600
cors:
  allowedOrigins:
    - https://example.org
`

func useConfigDir(t *testing.T, env, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))

	oldPaths, oldDotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = []string{filepath.Join(dir, ".env")}
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = oldPaths, oldDotEnv
	})

	t.Setenv("GKV_ENV", env)
}

func TestLoadConfig_FileValues(t *testing.T) {
	useConfigDir(t, Test, testYAML)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "vault.db", cfg.Database.Database)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "file-secret", cfg.Auth.SigningSecret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, time.Hour, cfg.Auth.InitDataMaxAge)
	assert.Equal(t, "golden-key-vault", cfg.Auth.Issuer)
	assert.Equal(t, []string{"https://example.org"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	useConfigDir(t, Test, testYAML)
	t.Setenv("GKV_AUTH_SIGNING_SECRET", "env-secret")
	t.Setenv("GKV_AUTH_BOT_TOKEN", "123:abc")
	t.Setenv("GKV_AUTH_ADMIN_KEY", "admin")
	t.Setenv("GKV_SERVER_PORT", "7070")
	t.Setenv("GKV_AUTH_TOKEN_TTL_MINUTES", "15")
	t.Setenv("GKV_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.Auth.SigningSecret)
	assert.Equal(t, "123:abc", cfg.Auth.BotToken)
	assert.Equal(t, "admin", cfg.Auth.AdminKey)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	useConfigDir(t, Test, testYAML)
	dotEnv := DotEnvPaths[0]
	require.NoError(t, os.WriteFile(dotEnv, []byte("GKV_AUTH_BOT_TOKEN=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("GKV_AUTH_BOT_TOKEN") })

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Auth.BotToken)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	useConfigDir(t, Test, testYAML)
	t.Setenv("GKV_ENV", "staging")

	_, err := LoadConfig()

	assert.Error(t, err)
}
