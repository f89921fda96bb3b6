package workbench

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the workbench pages and the bundle API. limiter is
// applied to mutating routes only; reads stay cheap.
func RegisterRoutes(e *echo.Echo, h *Handler, limiter echo.MiddlewareFunc) {
	e.GET("/", h.Page)

	wb := e.Group("/workbench", limiter)
	wb.POST("/metadata/:field", h.UpdateMetadata)
	wb.POST("/endpoints", h.AddEndpoint)
	wb.DELETE("/endpoints/:index", h.RemoveEndpoint)
	wb.POST("/reset", h.Reset)
}

// RegisterAPIRoutes mounts the JSON surface under the versioned API group.
func RegisterAPIRoutes(g *echo.Group, h *Handler) {
	g.GET("/bundle", h.BundleAPI)
}
