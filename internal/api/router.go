package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/navicula/navicula/internal/api/handler"
	"github.com/navicula/navicula/internal/api/middleware"
	"github.com/navicula/navicula/internal/core/ports"
)

// Dependencies carries everything the router needs. Mongo and Redis are nil
// unless the corresponding backend is configured.
type Dependencies struct {
	Navigation    ports.NavigationService
	Settings      ports.SettingsService
	Notifications ports.NotificationService
	Configs       ports.ConfigStore
	Mongo         *mongo.Database
	Redis         *redis.Client
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("navicula"))
	e.Use(middleware.Identity())

	// --- Launcher API ---
	configHandler := handler.NewConfigHandler(deps.Navigation)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	settingsHandler := handler.NewSettingsHandler(deps.Settings)

	apiGroup := e.Group("/api")
	apiGroup.GET("/config", configHandler.GetConfig)
	apiGroup.GET("/notifications/:appId", notificationHandler.GetCount)
	apiGroup.GET("/user-settings/:appId", settingsHandler.Get)
	apiGroup.POST("/user-settings/:appId", settingsHandler.Update)
	apiGroup.DELETE("/user-settings/:appId", settingsHandler.Delete)

	// --- Health probes (no identity required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Configs, deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
