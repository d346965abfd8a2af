package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/userhub/accounts-api/docs"
	"github.com/userhub/accounts-api/internal/api/handler"
	"github.com/userhub/accounts-api/internal/api/middleware"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
	"github.com/userhub/accounts-api/internal/core/service"
	mongodb "github.com/userhub/accounts-api/internal/infrastructure/db/mongo"
)

// RouterConfig carries the settings the router needs beyond its injected
// collaborators.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, trail ports.AuditTrail, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)

	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(tokens, hasher)
	userService := service.NewUserService(userRepo, roleRepo, hasher, trail, log)
	roleService := service.NewRoleService(roleRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)

	auth := middleware.Auth(tokens)
	admin := middleware.RequireRole(domain.RoleAdmin)
	byID := middleware.IdentifyByID(userRepo)
	byEmail := middleware.IdentifyByEmail(userRepo)

	// --- User routes ---
	e.POST("/users/login", authHandler.Login, byEmail)
	e.POST("/users/create", userHandler.Create, auth, admin)
	e.GET("/users", userHandler.List, auth, admin)
	e.GET("/users/:id", userHandler.Get, auth, admin, byID)
	e.PUT("/users/:id", userHandler.Update, auth, admin, byID)
	e.PATCH("/users/roles/:id", userHandler.UpdateRoles, auth, admin, byID)
	e.DELETE("/users/:id", userHandler.Delete, auth, admin, byID)

	// --- Role routes ---
	e.POST("/roles/create", roleHandler.Create, auth, admin)
	e.GET("/roles", roleHandler.List, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
