package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/client-portal/internal/api/handler"
	"github.com/freelancehub/client-portal/internal/core/ports"
	"github.com/freelancehub/client-portal/internal/core/service"
)

// Deps carries everything the router needs. MongoDB and Redis are nil when
// the process runs on the in-memory store without a cache; the readiness
// probe adapts accordingly.
type Deps struct {
	Store  ports.Store
	Cache  service.StatsCache
	Mongo  *mongo.Database
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Deliberately absent: per-request authentication. The original product
// trusts the identity the browser caches at login, so the clientId path
// parameter and the /api/admin prefix are the entire access-control
// surface. Documented weakness, not an invariant to harden here.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Services ---
	authService := service.NewAuthService(deps.Store, deps.Cache, deps.Logger)
	projectService := service.NewProjectService(deps.Store, deps.Logger)
	adminService := service.NewAdminService(deps.Store, deps.Cache, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	adminHandler := handler.NewAdminHandler(adminService)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)

	// --- Client routes ---
	projects := e.Group("/api/projects")
	projects.GET("/my/:clientId", projectHandler.ListMine)
	projects.PATCH("/:id/drive-link", projectHandler.SubmitDriveLink)

	// --- Admin routes ---
	admin := e.Group("/api/admin")
	admin.GET("/projects", adminHandler.ListProjects)
	admin.POST("/projects", adminHandler.CreateProject)
	admin.PATCH("/projects/:id", adminHandler.UpdateProject)
	admin.DELETE("/projects/:id", adminHandler.DeleteProject)
	admin.GET("/clients", adminHandler.ListClients)
	admin.GET("/clients/:id", adminHandler.GetClient)
	admin.GET("/stats", adminHandler.Stats)

	// --- Ops endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
