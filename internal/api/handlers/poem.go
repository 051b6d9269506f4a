package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/versecraft/poem-api/internal/config"
	"github.com/versecraft/poem-api/internal/models"
	"github.com/versecraft/poem-api/internal/services"
)

// PoemHandler serves the plain REST generation endpoint
type PoemHandler struct {
	svc      *services.PoemService
	defaults models.PoemDefaults
}

func NewPoemHandler(svc *services.PoemService, cfg *config.Config) *PoemHandler {
	return &PoemHandler{svc: svc, defaults: cfg.PoemDefaults}
}

// GeneratePoem handles POST /generate_poem. The body is the raw argument
// object of the generate_poem tool; the response is {"poem": <text>}.
func (h *PoemHandler) GeneratePoem(c *gin.Context) {
	var args map[string]interface{}
	if err := c.ShouldBindJSON(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	req, err := models.ParsePoemRequest(models.ToolGeneratePoem, args, h.defaults)
	if err != nil {
		writeValidationError(c, err)
		return
	}

	poem, err := h.svc.Generate(c.Request.Context(), req)
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"poem": poem})
}
