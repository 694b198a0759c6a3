package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "GKV"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first readable .env file from DotEnvPaths
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.logSql", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("auth.issuer", "golden-key-vault")
	v.SetDefault("auth.tokenTTL", 1440)     // minutes
	v.SetDefault("auth.initDataMaxAge", 86400) // seconds

	v.SetDefault("cors.allowedOrigins", []string{"https://web.telegram.org"})
}

// getEnvironment determines the environment from GKV_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets environment variables win over file values.
// Secrets are expected to arrive this way rather than from the YAML files.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"GKV_DB_DRIVER":           "database.driver",
		"GKV_DB_HOST":             "database.host",
		"GKV_DB_PORT":             "database.port",
		"GKV_DB_USERNAME":         "database.username",
		"GKV_DB_PASSWORD":         "database.password",
		"GKV_DB_NAME":             "database.database",
		"GKV_DB_SSL_MODE":         "database.sslMode",
		"GKV_SERVER_HOST":         "server.host",
		"GKV_LOGGER_LEVEL":        "logger.level",
		"GKV_AUTH_SIGNING_SECRET": "auth.signingSecret",
		"GKV_AUTH_BOT_TOKEN":      "auth.botToken",
		"GKV_AUTH_ADMIN_KEY":      "auth.adminKey",
	}
	for name, key := range stringOverrides {
		if value := os.Getenv(name); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"GKV_SERVER_PORT":                 "server.port",
		"GKV_DB_MAX_OPEN_CONNS":           "database.maxOpenConns",
		"GKV_DB_MAX_IDLE_CONNS":           "database.maxIdleConns",
		"GKV_DB_QUERY_TIMEOUT_SECONDS":    "database.queryTimeout",
		"GKV_AUTH_TOKEN_TTL_MINUTES":      "auth.tokenTTL",
		"GKV_AUTH_INIT_DATA_MAX_AGE_SECS": "auth.initDataMaxAge",
	}
	for name, key := range intOverrides {
		if value := getEnvInt(name, -1); value >= 0 {
			v.Set(key, value)
		}
	}

	if origins := os.Getenv("GKV_CORS_ALLOWED_ORIGINS"); origins != "" {
		v.Set("cors.allowedOrigins", splitAndTrim(origins))
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

func splitAndTrim(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute
	config.Auth.InitDataMaxAge = time.Duration(config.Auth.InitDataMaxAge) * time.Second
}
