package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/versecraft/poem-api/internal/config"
	"github.com/versecraft/poem-api/internal/models"
	"github.com/versecraft/poem-api/internal/services"
)

// Tool describes an MCP tool and its input schema
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// CallRequest is the body of POST /mcp/call
type CallRequest struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"arguments"`
}

// MCPHandler serves the tool listing and tool-call dispatch
type MCPHandler struct {
	svc      *services.PoemService
	defaults models.PoemDefaults
}

func NewMCPHandler(svc *services.PoemService, cfg *config.Config) *MCPHandler {
	return &MCPHandler{svc: svc, defaults: cfg.PoemDefaults}
}

// ListTools returns the tool descriptors for GET /mcp/tools
func (h *MCPHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": toolDescriptors()})
}

// Call dispatches POST /mcp/call to the named tool
func (h *MCPHandler) Call(c *gin.Context) {
	var req CallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	poemReq, err := models.ParsePoemRequest(req.Name, req.Args, h.defaults)
	if err != nil {
		writeValidationError(c, err)
		return
	}

	poem, err := h.svc.Generate(c.Request.Context(), poemReq)
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": poem})
}

// writeValidationError maps the validation taxonomy onto HTTP responses,
// naming the offending field and, for enums, the allowed set.
func writeValidationError(c *gin.Context, err error) {
	var unknownTool *models.UnknownToolError
	if errors.As(err, &unknownTool) {
		c.JSON(http.StatusNotFound, gin.H{"error": unknownTool.Error()})
		return
	}

	var missing *models.MissingFieldError
	if errors.As(err, &missing) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": missing.Error(),
			"field": missing.Field,
		})
		return
	}

	var invalidEnum *models.InvalidEnumValueError
	if errors.As(err, &invalidEnum) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   invalidEnum.Error(),
			"field":   invalidEnum.Field,
			"allowed": invalidEnum.Allowed,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func writeGenerationError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrGenerationUnavailable) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func toolDescriptors() []Tool {
	styleSchema := enumSchema("Poem style", models.AllowedStyles)
	moodSchema := enumSchema("Poem mood", models.AllowedMoods)
	lengthSchema := enumSchema("Poem length", models.AllowedLengths)
	seasonSchema := enumSchema("Season framing", models.AllowedSeasons)
	modelSchema := map[string]interface{}{"type": "string", "description": "LLM model to use"}
	providerSchema := enumSchema("LLM provider", models.AllowedProviders)

	return []Tool{
		{
			Name:        models.ToolGeneratePoem,
			Description: "Generate a poem by theme, style, mood, length, and season",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"theme":    map[string]interface{}{"type": "string", "description": "What the poem is about"},
					"style":    styleSchema,
					"mood":     moodSchema,
					"length":   lengthSchema,
					"season":   seasonSchema,
					"model":    modelSchema,
					"provider": providerSchema,
				},
				"required": []string{"theme"},
			},
		},
		{
			Name:        models.ToolQuickPoem,
			Description: "Generate a poem from just a theme, using default style, mood, and length",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"theme": map[string]interface{}{"type": "string", "description": "What the poem is about"},
				},
				"required": []string{"theme"},
			},
		},
		{
			Name:        models.ToolHaikuGenerator,
			Description: "Generate a haiku (5-7-5 syllable structure) about a subject",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"subject": map[string]interface{}{"type": "string", "description": "What the haiku is about"},
					"season":  seasonSchema,
				},
				"required": []string{"subject"},
			},
		},
		{
			Name:        models.ToolAcrosticPoem,
			Description: "Generate an acrostic poem whose line-initial letters spell the given word",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"word": map[string]interface{}{"type": "string", "description": "The word the poem spells out"},
					"mood": moodSchema,
				},
				"required": []string{"word"},
			},
		},
	}
}

func enumSchema(description string, allowed []string) map[string]interface{} {
	values := make([]interface{}, len(allowed))
	for i, v := range allowed {
		values[i] = v
	}
	return map[string]interface{}{
		"type":        "string",
		"description": description,
		"enum":        values,
	}
}
