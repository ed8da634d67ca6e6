// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wander/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DiscoveryHandler *handler.DiscoveryHandler
	StreamHandler    *handler.StreamHandler
	LocationHandler  *handler.LocationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	discoveryHandler *handler.DiscoveryHandler
	streamHandler    *handler.StreamHandler
	locationHandler  *handler.LocationHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		discoveryHandler: params.DiscoveryHandler,
		streamHandler:    params.StreamHandler,
		locationHandler:  params.LocationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	searchGroup := apiV1.Group("/search")
	{
		searchGroup.POST("/text", r.discoveryHandler.SearchByText)
		searchGroup.POST("/current-location", r.discoveryHandler.SearchByCurrentLocation)
		searchGroup.POST("/cancel", r.discoveryHandler.CancelLoading)
	}

	activitiesGroup := apiV1.Group("/activities")
	{
		activitiesGroup.POST("/:id/select", r.discoveryHandler.SelectActivity)
		activitiesGroup.PUT("/:id/favorite", r.discoveryHandler.SetFavorite)
	}

	favoritesGroup := apiV1.Group("/favorites")
	{
		favoritesGroup.POST("/load", r.discoveryHandler.LoadFavorites)
		favoritesGroup.DELETE("", r.discoveryHandler.ClearFavorites)
	}

	apiV1.POST("/map/load", r.discoveryHandler.LoadMapItems)
	apiV1.GET("/state", r.discoveryHandler.GetState)
	apiV1.GET("/messages", r.streamHandler.StreamMessages)
	apiV1.POST("/location/updates", r.locationHandler.PublishUpdate)
}
