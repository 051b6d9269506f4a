package api

import (
	"github.com/gin-gonic/gin"

	"github.com/versecraft/poem-api/internal/api/handlers"
	apimiddleware "github.com/versecraft/poem-api/internal/api/middleware"
	"github.com/versecraft/poem-api/internal/config"
	"github.com/versecraft/poem-api/internal/services"
)

// SetupRouter wires the middleware chain and routes.
func SetupRouter(cfg *config.Config, svc *services.PoemService) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Liveness and health
	healthHandler := handlers.NewHealthHandler(cfg)
	router.GET("/", healthHandler.Home)
	router.GET("/health", healthHandler.HealthCheck)

	// MCP tool surface (bearer-guarded when MCP_TOKEN is set)
	mcpHandler := handlers.NewMCPHandler(svc, cfg)
	mcp := router.Group("/mcp")
	mcp.Use(apimiddleware.BearerAuth(cfg.MCPToken))
	{
		mcp.GET("/tools", mcpHandler.ListTools)
		mcp.POST("/call", mcpHandler.Call)
	}

	// Plain REST surface
	poemHandler := handlers.NewPoemHandler(svc, cfg)
	router.POST("/generate_poem", poemHandler.GeneratePoem)

	return router
}
