package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig(env string) *Config {
	return &Config{
		Environment: env,
		Server:      ServerConfig{Port: 8080},
		Auth: AuthConfig{
			SigningSecret:  strings.Repeat("s", 32),
			BotToken:       "123:abc",
			AdminKey:       "admin",
			TokenTTL:       24 * time.Hour,
			InitDataMaxAge: time.Hour,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid production config", func(t *testing.T) {
		assert.NoError(t, validConfig(Production).Validate())
	})

	t.Run("development allows missing secrets", func(t *testing.T) {
		cfg := validConfig(Development)
		cfg.Auth.SigningSecret = ""
		cfg.Auth.BotToken = ""
		cfg.Auth.AdminKey = ""

		assert.NoError(t, cfg.Validate())
	})

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"zero token ttl", func(c *Config) { c.Auth.TokenTTL = 0 }},
		{"negative max age", func(c *Config) { c.Auth.InitDataMaxAge = -time.Second }},
		{"production without bot token", func(c *Config) { c.Auth.BotToken = "" }},
		{"production without signing secret", func(c *Config) { c.Auth.SigningSecret = "" }},
		{"production with short signing secret", func(c *Config) { c.Auth.SigningSecret = "short" }},
		{"production without admin key", func(c *Config) { c.Auth.AdminKey = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig(Production)
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
