// Package app assembles the HTTP application: the Echo instance, its
// middleware chain, the central error handler, and the route table wiring
// plugins to their stores.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/forgelabs/pluginforge/internal/apperror"
	"github.com/forgelabs/pluginforge/internal/config"
	"github.com/forgelabs/pluginforge/internal/middleware"
	"github.com/forgelabs/pluginforge/internal/templates/pages"
)

// App holds the application's long-lived dependencies.
type App struct {
	Config *config.Config
	DB     *sql.DB
	Redis  *redis.Client
	Echo   *echo.Echo
}

// New assembles the application. The returned App is ready to Start.
func New(cfg *config.Config, db *sql.DB, rdb *redis.Client) *App {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		Echo:   e,
	}

	a.setupMiddleware()
	a.registerRoutes()

	return a
}

func (a *App) setupMiddleware() {
	middleware.TrustedProxies(a.Echo, nil)

	a.Echo.Use(
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.SecurityHeaders(),
		middleware.Session(a.Config.Session.TTL),
		middleware.CSRF(),
	)

	a.Echo.HTTPErrorHandler = a.errorHandler
}

// errorHandler is the single place errors become HTTP responses. Domain
// errors keep their status and safe message; everything else collapses to a
// generic 500 so internals never leak.
func (a *App) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	appErr := toAppError(err)

	if appErr.Code >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
	} else {
		slog.Debug("request rejected",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.String("type", appErr.Type),
		)
	}

	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		_ = c.JSON(appErr.Code, appErr)
		return
	}

	if middleware.IsHTMX(c) {
		// Swap the whole page so the error is not spliced into a fragment
		// target.
		c.Response().Header().Set("HX-Retarget", "body")
		c.Response().Header().Set("HX-Reswap", "innerHTML")
	}

	_ = middleware.Render(c, appErr.Code, pages.ErrorPage(appErr.Code, appErr.Message))
}

func toAppError(err error) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return &apperror.AppError{
			Code:    httpErr.Code,
			Type:    "http_error",
			Message: fmt.Sprintf("%v", httpErr.Message),
		}
	}

	return apperror.NewInternal(err)
}

// Start begins serving HTTP and blocks until the server stops.
func (a *App) Start() error {
	addr := fmt.Sprintf(":%d", a.Config.Port)
	slog.Info("server listening", slog.String("addr", addr), slog.String("env", a.Config.Env))
	return a.Echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
