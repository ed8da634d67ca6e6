package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/api/response"
	"wander/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler exposes the coordinator commands
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// SearchTextRequest represents the request body for a text search
type SearchTextRequest struct {
	Query string `json:"query" validate:"required,max=200"`
}

// SetFavoriteRequest represents the request body for toggling a favorite
type SetFavoriteRequest struct {
	Favorite *bool `json:"favorite" validate:"required"`
}

// SearchByText starts a search around a "city, state" query
func (h *DiscoveryHandler) SearchByText(c echo.Context) error {
	var req SearchTextRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.discoveryUC.SearchByText(req.Query); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Accepted(c)
}

// SearchByCurrentLocation starts a search around the next location fix
func (h *DiscoveryHandler) SearchByCurrentLocation(c echo.Context) error {
	h.discoveryUC.SearchByCurrentLocation()

	return response.Accepted(c)
}

// CancelLoading cancels the active generation
func (h *DiscoveryHandler) CancelLoading(c echo.Context) error {
	h.discoveryUC.CancelLoading()

	return response.Accepted(c)
}

// SelectActivity emits a selection message
func (h *DiscoveryHandler) SelectActivity(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ACTIVITY_ID", "Activity id must be a UUID")
	}

	h.discoveryUC.SelectActivity(id)

	return response.Accepted(c)
}

// SetFavorite marks or unmarks an activity of the current results
func (h *DiscoveryHandler) SetFavorite(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ACTIVITY_ID", "Activity id must be a UUID")
	}

	var req SetFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.discoveryUC.SetFavorite(c.Request().Context(), *req.Favorite, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Accepted(c)
}

// LoadMapItems emits the known coordinates
func (h *DiscoveryHandler) LoadMapItems(c echo.Context) error {
	h.discoveryUC.LoadMapItems()

	return response.Accepted(c)
}

// LoadFavorites switches the results to the stored favorites
func (h *DiscoveryHandler) LoadFavorites(c echo.Context) error {
	if err := h.discoveryUC.LoadFavorites(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Accepted(c)
}

// ClearFavorites deletes every stored favorite
func (h *DiscoveryHandler) ClearFavorites(c echo.Context) error {
	if err := h.discoveryUC.ClearFavorites(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Accepted(c)
}

// GetState returns the current session state snapshot
func (h *DiscoveryHandler) GetState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.discoveryUC.State())
}
