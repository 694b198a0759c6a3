package routes

import (
	"time"

	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Key    *handler.KeyHandler
	Health *handler.HealthHandler
}

// Guards are the access checks applied to protected route groups
type Guards struct {
	Session gin.HandlerFunc // bearer session token
	Admin   gin.HandlerFunc // administrative key
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, guards Guards) {
	router.GET("/health", handlers.Health.Health)

	// GET /users, the admin guard covers only the listing
	router.GET("/users", guards.Admin, handlers.User.ListUsers)

	userRoutes := router.Group("/users")
	{
		// POST /users/login
		userRoutes.POST("/login", handlers.Auth.Login)

		// POST /users/refresh
		userRoutes.POST("/refresh", guards.Session, handlers.Auth.Refresh)

		// GET /users/profile
		userRoutes.GET("/profile", guards.Session, handlers.User.GetProfile)
	}

	keyRoutes := router.Group("/keys", guards.Session)
	{
		keyRoutes.GET("/user", handlers.Key.ListKeys)
		keyRoutes.POST("/create", handlers.Key.CreateKey)
		keyRoutes.PUT("/:id", handlers.Key.UpdateKey)
		keyRoutes.DELETE("/:id", handlers.Key.DeleteKey)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
	requestTimeout time.Duration,
) {
	// Order matters: the request id must exist before anything logs
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.Timeout(timeProvider, requestTimeout))
}
