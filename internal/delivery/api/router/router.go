// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracker/config"
	"tracker/internal/delivery/api/middleware"
	"tracker/internal/delivery/api/router/handler"
	"tracker/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	EmployeeHandler *handler.EmployeeHandler
	AccountHandler  *handler.AccountHandler
	StatsHandler    *handler.StatsHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Registry
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	employeeHandler *handler.EmployeeHandler
	accountHandler  *handler.AccountHandler
	statsHandler    *handler.StatsHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Registry
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		employeeHandler: params.EmployeeHandler,
		accountHandler:  params.AccountHandler,
		statsHandler:    params.StatsHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsEnabled() {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/admin/setup", r.authHandler.SetupAdmin)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication
	admin := r.authMiddleware.RequireAdmin

	apiV1.GET("/me", r.employeeHandler.Me)

	employeesGroup := apiV1.Group("/employees")
	{
		employeesGroup.GET("", r.employeeHandler.List, admin)
		employeesGroup.GET("/:id", r.employeeHandler.Get)
	}

	accountsGroup := apiV1.Group("/accounts")
	{
		accountsGroup.GET("", r.accountHandler.List, admin)
		accountsGroup.POST("", r.accountHandler.Create, admin)
		accountsGroup.GET("/completed", r.accountHandler.ListCompleted, admin)
		accountsGroup.GET("/completed/daily", r.accountHandler.ListCompletedOnDay, admin)
		accountsGroup.GET("/completed/daily/stats", r.statsHandler.DailyCompleted, admin)
		accountsGroup.POST("/bulk-update", r.accountHandler.BulkUpdate, admin)
		accountsGroup.GET("/employee/:employeeId", r.accountHandler.ListByEmployee)

		accountsGroup.GET("/:id", r.accountHandler.Get)
		accountsGroup.PUT("/:id", r.accountHandler.Update)
		accountsGroup.DELETE("/:id", r.accountHandler.Delete, admin)
		accountsGroup.PUT("/:id/status", r.accountHandler.UpdateStatus)
		accountsGroup.GET("/:id/secret", r.accountHandler.RevealSecret)
	}

	statsGroup := apiV1.Group("/stats")
	{
		statsGroup.GET("/employees", r.statsHandler.AllEmployees, admin)
		statsGroup.GET("/employees/:id", r.statsHandler.Employee)
		statsGroup.GET("/employees/:id/completed", r.statsHandler.CompletedInWindow)
	}
}

func (r *router) metricsEnabled() bool {
	return r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled && r.config.Metrics.Path != ""
}
