package workbench

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/forgelabs/pluginforge/internal/apperror"
	"github.com/forgelabs/pluginforge/internal/middleware"
	"github.com/forgelabs/pluginforge/internal/scaffold"
)

// Handler wires HTTP requests to the workbench service. Page loads render
// the full workbench; HTMX mutations re-render only the workspace fragment
// (endpoint list plus artifact panels) so metadata inputs keep focus.
type Handler struct {
	service Service
}

// NewHandler creates a workbench handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Page renders the full workbench form with the current artifact set.
func (h *Handler) Page(c echo.Context) error {
	state, artifacts, err := h.service.Bundle(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}

	return middleware.Render(c, http.StatusOK,
		WorkbenchPage(state, artifacts, middleware.GetCSRFToken(c)))
}

// UpdateMetadata sets one metadata field from its form input. The input
// posts under its own field name.
func (h *Handler) UpdateMetadata(c echo.Context) error {
	field := c.Param("field")
	value := c.FormValue(field)

	err := h.service.UpdateMetadataField(c.Request().Context(), middleware.SessionID(c), field, value)
	if err != nil {
		return err
	}

	return h.renderWorkspace(c)
}

// AddEndpoint appends an endpoint from the sub-form submission.
func (h *Handler) AddEndpoint(c echo.Context) error {
	input := AddEndpointInput{
		Name:        c.FormValue("endpoint_name"),
		ReturnType:  c.FormValue("endpoint_return_type"),
		Description: c.FormValue("endpoint_description"),
		ParamDraft:  c.FormValue("endpoint_params"),
	}

	if err := h.service.AddEndpoint(c.Request().Context(), middleware.SessionID(c), input); err != nil {
		return err
	}

	return h.renderWorkspace(c)
}

// RemoveEndpoint deletes the endpoint at the position given in the path.
func (h *Handler) RemoveEndpoint(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return apperror.NewBadRequest("invalid endpoint index")
	}

	if err := h.service.RemoveEndpoint(c.Request().Context(), middleware.SessionID(c), index); err != nil {
		return err
	}

	return h.renderWorkspace(c)
}

// Reset discards the session's state and reloads the page.
func (h *Handler) Reset(c echo.Context) error {
	if err := h.service.Reset(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return err
	}

	if middleware.IsHTMX(c) {
		c.Response().Header().Set("HX-Redirect", "/")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// bundleResponse is the JSON shape served by the bundle API.
type bundleResponse struct {
	Metadata  scaffold.PluginMetadata `json:"metadata"`
	Endpoints []scaffold.EndpointSpec `json:"endpoints"`
	Artifacts []scaffold.Artifact     `json:"artifacts"`
}

// BundleAPI serves the current session's artifact set as JSON, for tooling
// that wants the generated files without scraping the page.
func (h *Handler) BundleAPI(c echo.Context) error {
	state, artifacts, err := h.service.Bundle(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bundleResponse{
		Metadata:  state.Metadata,
		Endpoints: state.Endpoints,
		Artifacts: artifacts,
	})
}

// renderWorkspace re-renders the workspace fragment after a mutation, or
// falls back to a full redirect for non-HTMX clients.
func (h *Handler) renderWorkspace(c echo.Context) error {
	if !middleware.IsHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	state, artifacts, err := h.service.Bundle(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}

	return middleware.Render(c, http.StatusOK,
		Workspace(state, artifacts, middleware.GetCSRFToken(c)))
}
