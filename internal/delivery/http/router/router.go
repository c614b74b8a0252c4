// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/middleware"
	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/router/handler"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	ClientHandler     *handler.ClientHandler
	SiteHandler       *handler.SiteHandler
	MachineHandler    *handler.MachineHandler
	PartHandler       *handler.PartHandler
	WorkLogHandler    *handler.WorkLogHandler
	WorkItemHandler   *handler.WorkItemHandler
	AttachmentHandler *handler.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth           *handler.AuthHandler
	users          *handler.UserHandler
	clients        *handler.ClientHandler
	sites          *handler.SiteHandler
	machines       *handler.MachineHandler
	parts          *handler.PartHandler
	workLogs       *handler.WorkLogHandler
	workItems      *handler.WorkItemHandler
	attachments    *handler.AttachmentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:           params.AuthHandler,
		users:          params.UserHandler,
		clients:        params.ClientHandler,
		sites:          params.SiteHandler,
		machines:       params.MachineHandler,
		parts:          params.PartHandler,
		workLogs:       params.WorkLogHandler,
		workItems:      params.WorkItemHandler,
		attachments:    params.AttachmentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Everything except /health and /v1/auth/* requires a bearer token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	// Auth routes stay open; they are how tokens are obtained.
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/signin", r.auth.SignIn)
		authGroup.POST("/refresh-token", r.auth.RefreshToken)
		authGroup.POST("/logout", r.auth.Logout, r.authMiddleware.Authenticate)
	}

	adminOnly := r.authMiddleware.RequireRole("admin")

	userGroup := v1.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.users.List)
		userGroup.POST("", r.users.Create, adminOnly)
		userGroup.GET("/profile", r.users.Profile)
		userGroup.GET("/roles", r.users.Roles)
		userGroup.GET("/:id", r.users.Get)
		userGroup.PUT("/:id", r.users.Replace)
		userGroup.PATCH("/:id", r.users.Update)
		userGroup.DELETE("/:id", r.users.Delete)
	}

	// Client records carry contract terms, so the whole group is admin-only.
	clientGroup := v1.Group("/clients")
	clientGroup.Use(r.authMiddleware.Authenticate)
	clientGroup.Use(adminOnly)
	{
		clientGroup.GET("", r.clients.List)
		clientGroup.POST("", r.clients.Create)
		clientGroup.GET("/contract-types", r.clients.ContractTypes)
		clientGroup.GET("/:id", r.clients.Get)
		clientGroup.PUT("/:id", r.clients.Replace)
		clientGroup.PATCH("/:id", r.clients.Update)
		clientGroup.DELETE("/:id", r.clients.Delete)
	}

	siteGroup := v1.Group("/sites")
	siteGroup.Use(r.authMiddleware.Authenticate)
	{
		siteGroup.GET("", r.sites.List)
		siteGroup.POST("", r.sites.Create, adminOnly)
		siteGroup.GET("/:id", r.sites.Get)
		siteGroup.GET("/:id/nearby", r.sites.Nearby)
		siteGroup.PATCH("/:id", r.sites.Update)
		siteGroup.DELETE("/:id", r.sites.Delete)
	}

	machineGroup := v1.Group("/machines")
	machineGroup.Use(r.authMiddleware.Authenticate)
	{
		machineGroup.GET("", r.machines.List)
		machineGroup.POST("", r.machines.Create)
		machineGroup.GET("/states", r.machines.States)
		machineGroup.GET("/site/:siteId", r.machines.ListBySite)
		machineGroup.GET("/:id", r.machines.Get)
		machineGroup.PUT("/:id", r.machines.Replace)
		machineGroup.PATCH("/:id", r.machines.Update)
		machineGroup.DELETE("/:id", r.machines.Delete)
		machineGroup.GET("/:id/qrcode", r.machines.QRCode)
		machineGroup.POST("/:id/file/:category/:index", r.attachments.Upload(usecase.AttachmentOwnerMachine))
		machineGroup.GET("/:id/file/:category/:index", r.attachments.Download(usecase.AttachmentOwnerMachine))
	}

	partGroup := v1.Group("/parts")
	partGroup.Use(r.authMiddleware.Authenticate)
	{
		partGroup.GET("", r.parts.List)
		partGroup.POST("", r.parts.Create)
		partGroup.GET("/states", r.parts.States)
		partGroup.GET("/:id", r.parts.Get)
		partGroup.PATCH("/:id", r.parts.Update)
		partGroup.DELETE("/:id", r.parts.Delete)
	}

	workLogGroup := v1.Group("/worklogs")
	workLogGroup.Use(r.authMiddleware.Authenticate)
	{
		workLogGroup.GET("", r.workLogs.List)
		workLogGroup.POST("", r.workLogs.Create)
		workLogGroup.GET("/owner/:ownerId", r.workLogs.ListByOwner)
		workLogGroup.POST("/filter", r.workLogs.Filter)
		workLogGroup.GET("/:id", r.workLogs.Get)
		workLogGroup.PATCH("/:id", r.workLogs.Update)
		workLogGroup.DELETE("/:id", r.workLogs.Delete)
		workLogGroup.POST("/:id/file/:category/:index", r.attachments.Upload(usecase.AttachmentOwnerWorkLog))
		workLogGroup.GET("/:id/file/:category/:index", r.attachments.Download(usecase.AttachmentOwnerWorkLog))
	}

	workItemGroup := v1.Group("/workitems")
	workItemGroup.Use(r.authMiddleware.Authenticate)
	{
		workItemGroup.GET("", r.workItems.List)
		workItemGroup.POST("", r.workItems.Create)
		workItemGroup.GET("/workTypes", r.workItems.WorkTypes)
		workItemGroup.GET("/workLog/:workLogId", r.workItems.ListByWorkLog)
		workItemGroup.GET("/machine/:machineId", r.workItems.ListByMachine)
		workItemGroup.GET("/owner/:ownerId", r.workItems.ListByOwner)
		workItemGroup.POST("/filter", r.workItems.Filter)
		workItemGroup.GET("/:id", r.workItems.Get)
		workItemGroup.PATCH("/:id", r.workItems.Update)
		workItemGroup.DELETE("/:id", r.workItems.Delete)
	}
}
