package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/luminui/taskboard/internal/api/handler"
	"github.com/luminui/taskboard/internal/api/middleware"
	"github.com/luminui/taskboard/internal/core/service"
	mongorepo "github.com/luminui/taskboard/internal/infrastructure/db/mongo"
	redisinfra "github.com/luminui/taskboard/internal/infrastructure/db/redis"
)

const tokenTTL = 7 * 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// The browser SPA is served from a different origin.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("taskboard"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	taskRepo := mongorepo.NewTaskRepository(db)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL)
	profileService := service.NewProfileService(userRepo, log)
	taskService := service.NewTaskService(taskRepo, log)

	var limiter handler.LoginLimiter
	if rdb != nil {
		limiter = redisinfra.NewLoginThrottle(rdb)
	}

	authHandler := handler.NewAuthHandler(authService, limiter, log)
	profileHandler := handler.NewProfileHandler(profileService)
	taskHandler := handler.NewTaskHandler(taskService)
	requireAuth := middleware.Auth(authService)

	// --- Auth routes (public) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Profile routes ---
	profile := e.Group("/api/profile", requireAuth)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)

	// --- Task routes ---
	tasks := e.Group("/api/tasks", requireAuth)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
