package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	authUseCase "github.com/amirhossein-jamali/golden-key-vault/internal/domain/usecase/auth"
	keyUseCase "github.com/amirhossein-jamali/golden-key-vault/internal/domain/usecase/key"
	userUseCase "github.com/amirhossein-jamali/golden-key-vault/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/telegram"
	timeProvider "github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/token"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

const serviceName = "golden-key-vault"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction() || strings.EqualFold(cfg.Logger.Format, "json"),
		Level:      cfg.Logger.Level,
		Service:    serviceName,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConfig := database.FromAppConfig(cfg)
	dbManager := database.NewManager(dbConfig, appLogger, tp)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()

	if _, err := dbManager.Connect(startupCtx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"target": dbConfig.RedactedTarget(),
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(startupCtx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories and the unit of work
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	keyRepo := repository.NewKeyRepository(dbManager.DB(), appLogger)
	uow := dbManager.CreateUnitOfWork()

	// Security adapters
	verifier := telegram.NewVerifier(cfg.Auth.BotToken, cfg.Auth.InitDataMaxAge, tp)
	issuer := token.NewJWTIssuer(cfg.Auth.SigningSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)

	if !verifier.VerificationEnabled() {
		appLogger.Warn("Bot token not configured: init data signatures will NOT be verified", map[string]any{
			"env": cfg.Environment,
		})
	}
	if !issuer.Ready() {
		appLogger.Warn("Signing secret not configured: logins will fail until it is set", nil)
	}
	if cfg.Auth.AdminKey == "" {
		appLogger.Warn("Admin key not configured: the user listing is not protected", nil)
	}

	// Initialize use cases
	authUseCaseImpl := authUseCase.NewAuthUseCase(uow, userRepo, verifier, issuer, tp, appLogger)
	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, appLogger)
	keyUseCaseImpl := keyUseCase.NewKeyUseCase(keyRepo, tp, appLogger)

	// Initialize API handlers
	handlers := routes.Handlers{
		Auth:   handler.NewAuthHandler(authUseCaseImpl, appLogger),
		User:   handler.NewUserHandler(userUseCaseImpl, appLogger),
		Key:    handler.NewKeyHandler(keyUseCaseImpl, appLogger),
		Health: handler.NewHealthHandler(dbManager, appLogger),
	}
	guards := routes.Guards{
		Session: middleware.JWTAuth(issuer, appLogger),
		Admin:   middleware.AdminKey(cfg.Auth.AdminKey, appLogger),
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.CORS.AllowedOrigins, dbManager.QueryTimeout())
	routes.SetupRoutes(router, handlers, guards)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"dialect": dbManager.Dialect(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	switch cfg.Database.Driver {
	case database.DriverPostgres:
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or GKV_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or GKV_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or GKV_DB_NAME environment variable)")
		}
	case database.DriverSQLite:
	default:
		return fmt.Errorf("invalid database driver: %q, must be %s or %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	// Environment should be set with a valid value
	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Production settings that are legal but risky only produce warnings
	if cfg.IsProduction() {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite is intended for development and tests")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
