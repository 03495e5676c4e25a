// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tourguide/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TourGuideHandler *handler.TourGuideHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	tourGuideHandler *handler.TourGuideHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tourGuideHandler: params.TourGuideHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	tourGuideGroup := e.Group("/tourguide")
	{
		tourGuideGroup.GET("/location", r.tourGuideHandler.GetLocation)
		tourGuideGroup.POST("/track", r.tourGuideHandler.TrackLocation)
		tourGuideGroup.GET("/nearby-attractions", r.tourGuideHandler.GetNearbyAttractions)
		tourGuideGroup.GET("/rewards", r.tourGuideHandler.GetRewards)
		tourGuideGroup.GET("/trip-deals", r.tourGuideHandler.GetTripDeals)
		tourGuideGroup.POST("/user", r.tourGuideHandler.CreateUser)
	}
}
