// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tasklist/internal/delivery/http/middleware"
	"tasklist/internal/delivery/http/router/handler"
	"tasklist/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TaskHandler    *handler.TaskHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	taskHandler    *handler.TaskHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		taskHandler:    params.TaskHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Task routes require a valid bearer token
	todoGroup := e.Group("/api/todo")
	todoGroup.Use(r.authMiddleware.Authenticate)
	{
		todoGroup.GET("", r.taskHandler.List)
		todoGroup.GET("/:id", r.taskHandler.Get)
		todoGroup.POST("", r.taskHandler.Create)
		todoGroup.PUT("/:id", r.taskHandler.Update)
		todoGroup.DELETE("/:id", r.taskHandler.Delete)
	}

	// User directory. Creating a user is open like /auth/register; reading
	// the directory needs the Admin role.
	userGroup := e.Group("/api/user")
	{
		userGroup.POST("", r.userHandler.Register)

		adminOnly := []echo.MiddlewareFunc{
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleNameAdmin),
		}
		userGroup.GET("", r.userHandler.List, adminOnly...)
		userGroup.GET("/:email", r.userHandler.Get, adminOnly...)
	}
}
