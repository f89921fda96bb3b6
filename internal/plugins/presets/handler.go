package presets

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forgelabs/pluginforge/internal/middleware"
)

// Handler wires HTTP requests to the preset service.
type Handler struct {
	service Service
}

// NewHandler creates a presets handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Page renders the preset catalog with save and apply controls.
func (h *Handler) Page(c echo.Context) error {
	presets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return middleware.Render(c, http.StatusOK,
		PresetsPage(presets, middleware.GetCSRFToken(c)))
}

// Create snapshots the current session's workbench state as a new preset.
func (h *Handler) Create(c echo.Context) error {
	input := CreatePresetInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}

	_, err := h.service.CreateFromSession(c.Request().Context(), middleware.SessionID(c), input)
	if err != nil {
		return err
	}

	return h.renderList(c)
}

// Delete removes a preset from the catalog.
func (h *Handler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("slug")); err != nil {
		return err
	}
	return h.renderList(c)
}

// Apply loads a preset into the current session and sends the browser back
// to the workbench.
func (h *Handler) Apply(c echo.Context) error {
	err := h.service.Apply(c.Request().Context(), middleware.SessionID(c), c.Param("slug"))
	if err != nil {
		return err
	}

	if middleware.IsHTMX(c) {
		c.Response().Header().Set("HX-Redirect", "/")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// ListAPI serves the catalog as JSON.
func (h *Handler) ListAPI(c echo.Context) error {
	presets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, presets)
}

func (h *Handler) renderList(c echo.Context) error {
	if !middleware.IsHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/presets")
	}

	presets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return middleware.Render(c, http.StatusOK, PresetList(presets))
}
