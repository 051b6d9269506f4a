package models

import "strings"

// Tool names exposed over the MCP surface
const (
	ToolGeneratePoem   = "generate_poem"
	ToolQuickPoem      = "quick_poem"
	ToolHaikuGenerator = "haiku_generator"
	ToolAcrosticPoem   = "acrostic_poem"
)

// Allowed values for the optional enum fields
var (
	AllowedStyles  = []string{"free_verse", "haiku", "limerick", "sonnet", "rhyming", "acrostic"}
	AllowedMoods   = []string{"happy", "sad", "inspiring", "romantic", "mysterious", "playful"}
	AllowedLengths = []string{"short", "medium", "long"}
	AllowedSeasons = []string{"spring", "summer", "autumn", "winter", "any"}

	// AllowedProviders are the LLM backends a request may name explicitly.
	AllowedProviders = []string{"openai", "gemini", "anthropic"}
)

// PoemDefaults holds the values applied when an optional field is omitted.
// These are tunable via environment variables rather than hard contractual
// values (see config.Load).
type PoemDefaults struct {
	Style  string
	Mood   string
	Length string
	Season string
}

// DefaultPoemDefaults returns the documented fallback defaults.
func DefaultPoemDefaults() PoemDefaults {
	return PoemDefaults{
		Style:  "free_verse",
		Mood:   "inspiring",
		Length: "medium",
		Season: "any",
	}
}

// PoemRequest is a validated poem-generation request. Construct it with
// ParsePoemRequest; a zero value is not meaningful.
type PoemRequest struct {
	Tool   string `json:"tool"`
	Text   string `json:"text"` // the theme, subject, or word depending on the tool
	Style  string `json:"style"`
	Mood   string `json:"mood"`
	Length string `json:"length"`
	Season string `json:"season"`

	// Provider selection (optional, passed through to the LLM layer)
	Model    string `json:"model,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// RequiredTextField returns the name of the required free-text argument for
// a tool ("theme", "subject", or "word").
func RequiredTextField(tool string) (string, bool) {
	switch tool {
	case ToolGeneratePoem, ToolQuickPoem:
		return "theme", true
	case ToolHaikuGenerator:
		return "subject", true
	case ToolAcrosticPoem:
		return "word", true
	default:
		return "", false
	}
}

// ParsePoemRequest validates a raw MCP argument map for the given tool and
// returns a fully-defaulted PoemRequest. Validation order is fixed: the
// required text field first, then each optional enum field. Required fields
// are never defaulted.
func ParsePoemRequest(tool string, args map[string]interface{}, defaults PoemDefaults) (*PoemRequest, error) {
	field, ok := RequiredTextField(tool)
	if !ok {
		return nil, &UnknownToolError{Tool: tool}
	}

	text := strings.TrimSpace(stringArg(args, field))
	if text == "" {
		return nil, &MissingFieldError{Field: field}
	}

	req := &PoemRequest{
		Tool:  tool,
		Text:  text,
		Model: strings.TrimSpace(stringArg(args, "model")),
	}

	var err error
	// Empty default: provider is inferred from the model name downstream.
	if req.Provider, err = enumArg(args, "provider", AllowedProviders, ""); err != nil {
		return nil, err
	}
	if req.Style, err = enumArg(args, "style", AllowedStyles, defaults.Style); err != nil {
		return nil, err
	}
	if req.Mood, err = enumArg(args, "mood", AllowedMoods, defaults.Mood); err != nil {
		return nil, err
	}
	if req.Length, err = enumArg(args, "length", AllowedLengths, defaults.Length); err != nil {
		return nil, err
	}
	if req.Season, err = enumArg(args, "season", AllowedSeasons, defaults.Season); err != nil {
		return nil, err
	}

	return req, nil
}

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// enumArg reads an optional enum argument, applying the default when absent
// or empty and rejecting values outside the allowed set.
func enumArg(args map[string]interface{}, key string, allowed []string, def string) (string, error) {
	raw, present := args[key]
	if !present {
		return def, nil
	}

	value, ok := raw.(string)
	if !ok {
		return "", &InvalidEnumValueError{Field: key, Value: raw, Allowed: allowed}
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}

	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	return "", &InvalidEnumValueError{Field: key, Value: value, Allowed: allowed}
}
