package presets

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the preset pages. limiter guards mutating routes.
func RegisterRoutes(e *echo.Echo, h *Handler, limiter echo.MiddlewareFunc) {
	e.GET("/presets", h.Page)

	p := e.Group("/presets", limiter)
	p.POST("", h.Create)
	p.DELETE("/:slug", h.Delete)
	p.POST("/:slug/apply", h.Apply)
}

// RegisterAPIRoutes mounts the JSON surface under the versioned API group.
func RegisterAPIRoutes(g *echo.Group, h *Handler) {
	g.GET("/presets", h.ListAPI)
}
