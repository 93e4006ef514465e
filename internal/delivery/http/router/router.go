// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accountd/internal/delivery/http/middleware"
	"accountd/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	DirectoryHandler *handler.DirectoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	directoryHandler *handler.DirectoryHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		directoryHandler: params.DirectoryHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, no token required
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Account routes that require authentication
	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		// Self-service update, any authenticated account
		accountGroup.PATCH("/me", r.accountHandler.UpdateSelf)

		// Directory-wide operations, admin only
		adminGroup := accountGroup.Group("")
		adminGroup.Use(r.authMiddleware.RequireAdmin)
		{
			adminGroup.GET("", r.directoryHandler.ListAccounts)
			adminGroup.GET("/:email", r.directoryHandler.GetAccount)
			adminGroup.DELETE("/:email", r.directoryHandler.DeleteAccount)
		}
	}
}
