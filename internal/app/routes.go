package app

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/forgelabs/pluginforge/internal/middleware"
	"github.com/forgelabs/pluginforge/internal/plugins/presets"
	"github.com/forgelabs/pluginforge/internal/plugins/workbench"
)

// registerRoutes builds each plugin's repository, service, and handler, and
// mounts them on the Echo instance.
func (a *App) registerRoutes() {
	a.Echo.Static("/static", "static")
	a.Echo.GET("/healthz", a.healthz)

	// Mutating routes share one sliding-window limiter keyed by client IP.
	limiter := middleware.RateLimit(60, time.Minute)

	workbenchRepo := workbench.NewRedisRepository(a.Redis, a.Config.Session.TTL)
	workbenchService := workbench.NewService(workbenchRepo)
	workbenchHandler := workbench.NewHandler(workbenchService)
	workbench.RegisterRoutes(a.Echo, workbenchHandler, limiter)

	presetsRepo := presets.NewMariaDBRepository(a.DB)
	presetsService := presets.NewService(presetsRepo, workbenchService)
	presetsHandler := presets.NewHandler(presetsService)
	presets.RegisterRoutes(a.Echo, presetsHandler, limiter)

	api := a.Echo.Group("/api/v1", middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:   []string{a.Config.BaseURL},
		AllowCredentials: true,
	}))
	workbench.RegisterAPIRoutes(api, workbenchHandler)
	presets.RegisterAPIRoutes(api, presetsHandler)
}

// healthz reports liveness of the app and both backing stores.
func (a *App) healthz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	report := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "ok",
	}

	if err := a.DB.PingContext(ctx); err != nil {
		status = http.StatusServiceUnavailable
		report["status"] = "degraded"
		report["database"] = err.Error()
	}
	if err := a.Redis.Ping(ctx).Err(); err != nil {
		status = http.StatusServiceUnavailable
		report["status"] = "degraded"
		report["redis"] = err.Error()
	}

	return c.JSON(status, report)
}
