package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/api/response"
	"wander/internal/domain/entity"
	"wander/internal/infra/location"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	Source *location.PushSource
	Logger *slog.Logger
}

// LocationHandler accepts raw updates from the device location feed
type LocationHandler struct {
	source *location.PushSource
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		source: params.Source,
		logger: params.Logger,
	}
}

// PublishLocationResponse reports how many live feeds received the update
type PublishLocationResponse struct {
	Delivered int `json:"delivered"`
}

// PublishUpdate pushes a raw location update to every running feed
func (h *LocationHandler) PublishUpdate(c echo.Context) error {
	var update entity.LocationUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location update")
	}

	if err := c.Validate(&update); err != nil {
		return response.HandleAppError(c, err)
	}

	delivered := h.source.Publish(update)

	return response.Success(c, http.StatusAccepted, PublishLocationResponse{Delivered: delivered})
}
