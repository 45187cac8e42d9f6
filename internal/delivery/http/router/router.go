// Package router contains routing setup for the HTTP delivery.
package router

import (
	"abacus/internal/delivery/http/middleware"
	"abacus/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CalcHandler         *handler.CalcHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	calcHandler         *handler.CalcHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		calcHandler:         params.CalcHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Arithmetic routes
	calcGroup := e.Group("/calc")
	{
		calcGroup.POST("/add", r.calcHandler.Add)
		calcGroup.POST("/subtract", r.calcHandler.Subtract)
		calcGroup.POST("/multiply", r.calcHandler.Multiply)
		calcGroup.POST("/divide", r.calcHandler.Divide)
		calcGroup.GET("/history", r.calcHandler.History)
	}
}
