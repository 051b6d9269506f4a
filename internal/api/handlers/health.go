package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/versecraft/poem-api/internal/config"
)

// HealthHandler reports service liveness and which providers are configured
type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Home returns the liveness message served on /
func (h *HealthHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Poem MCP Server is running!"})
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	providers := gin.H{
		"openai":    providerStatus(h.cfg.OpenAIAPIKey),
		"gemini":    providerStatus(h.cfg.GeminiAPIKey),
		"anthropic": providerStatus(h.cfg.AnthropicAPIKey),
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"providers": providers,
	})
}

func providerStatus(apiKey string) string {
	if apiKey != "" {
		return "configured"
	}
	return "not_configured"
}
