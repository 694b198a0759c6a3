package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	CORS        CORSConfig     `mapstructure:"cors"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"` // file path when driver is sqlite
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogSQL          bool          `mapstructure:"logSql"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// AuthConfig contains the secrets and lifetimes of the identity gateway
type AuthConfig struct {
	SigningSecret  string        `mapstructure:"signingSecret"`
	BotToken       string        `mapstructure:"botToken"`
	AdminKey       string        `mapstructure:"adminKey"`
	Issuer         string        `mapstructure:"issuer"`
	TokenTTL       time.Duration `mapstructure:"tokenTTL"`       // minutes
	InitDataMaxAge time.Duration `mapstructure:"initDataMaxAge"` // seconds, 0 disables the age check
}

// CORSConfig lists the origins allowed to call the API from a browser
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Validate checks settings that would make the service unsafe or unable to start
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTTL must be positive")
	}
	if c.Auth.InitDataMaxAge < 0 {
		return errors.New("auth.initDataMaxAge must not be negative")
	}

	if c.IsProduction() {
		if c.Auth.SigningSecret == "" {
			return errors.New("auth.signingSecret is required in production")
		}
		if len(c.Auth.SigningSecret) < 32 {
			return errors.New("auth.signingSecret must be at least 32 characters in production")
		}
		if c.Auth.BotToken == "" {
			return errors.New("auth.botToken is required in production: init data signatures must be verified")
		}
		if c.Auth.AdminKey == "" {
			return errors.New("auth.adminKey is required in production")
		}
	}
	return nil
}
