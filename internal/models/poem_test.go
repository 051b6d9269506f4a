package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoemRequest_AppliesDefaults(t *testing.T) {
	defaults := DefaultPoemDefaults()

	req, err := ParsePoemRequest(ToolQuickPoem, map[string]interface{}{
		"theme": "courage",
	}, defaults)
	require.NoError(t, err)

	assert.Equal(t, ToolQuickPoem, req.Tool)
	assert.Equal(t, "courage", req.Text)
	assert.Equal(t, "free_verse", req.Style)
	assert.Equal(t, "inspiring", req.Mood)
	assert.Equal(t, "medium", req.Length)
	assert.Equal(t, "any", req.Season)
	assert.Empty(t, req.Model)
	assert.Empty(t, req.Provider)
}

func TestParsePoemRequest_AcceptsValidEnums(t *testing.T) {
	req, err := ParsePoemRequest(ToolGeneratePoem, map[string]interface{}{
		"theme":    "the ocean at dawn",
		"style":    "sonnet",
		"mood":     "mysterious",
		"length":   "long",
		"season":   "winter",
		"provider": "anthropic",
		"model":    "claude-sonnet-4-20250514",
	}, DefaultPoemDefaults())
	require.NoError(t, err)

	assert.Equal(t, "the ocean at dawn", req.Text)
	assert.Equal(t, "sonnet", req.Style)
	assert.Equal(t, "mysterious", req.Mood)
	assert.Equal(t, "long", req.Length)
	assert.Equal(t, "winter", req.Season)
	assert.Equal(t, "anthropic", req.Provider)
	assert.Equal(t, "claude-sonnet-4-20250514", req.Model)
}

func TestParsePoemRequest_MissingRequiredField(t *testing.T) {
	tests := []struct {
		tool  string
		field string
	}{
		{ToolGeneratePoem, "theme"},
		{ToolQuickPoem, "theme"},
		{ToolHaikuGenerator, "subject"},
		{ToolAcrosticPoem, "word"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			_, err := ParsePoemRequest(tt.tool, map[string]interface{}{}, DefaultPoemDefaults())
			require.Error(t, err)

			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.field, missing.Field)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestParsePoemRequest_WhitespaceTextIsMissing(t *testing.T) {
	_, err := ParsePoemRequest(ToolGeneratePoem, map[string]interface{}{
		"theme": "   ",
	}, DefaultPoemDefaults())

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "theme", missing.Field)
}

func TestParsePoemRequest_InvalidEnumValue(t *testing.T) {
	_, err := ParsePoemRequest(ToolGeneratePoem, map[string]interface{}{
		"theme": "autumn leaves",
		"style": "unknown_style",
	}, DefaultPoemDefaults())
	require.Error(t, err)

	var invalid *InvalidEnumValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "style", invalid.Field)
	assert.Equal(t, AllowedStyles, invalid.Allowed)
	assert.Contains(t, invalid.Error(), "unknown_style")
	assert.True(t, IsValidationError(err))
}

func TestParsePoemRequest_InvalidProvider(t *testing.T) {
	_, err := ParsePoemRequest(ToolGeneratePoem, map[string]interface{}{
		"theme":    "mountains",
		"provider": "cohere",
	}, DefaultPoemDefaults())

	var invalid *InvalidEnumValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "provider", invalid.Field)
	assert.Equal(t, AllowedProviders, invalid.Allowed)
}

func TestParsePoemRequest_NonStringEnumRejected(t *testing.T) {
	_, err := ParsePoemRequest(ToolGeneratePoem, map[string]interface{}{
		"theme":  "rivers",
		"length": 42,
	}, DefaultPoemDefaults())

	var invalid *InvalidEnumValueError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "length", invalid.Field)
}

func TestParsePoemRequest_RequiredFieldCheckedBeforeEnums(t *testing.T) {
	// Both the required field and an enum are bad; the missing field wins.
	_, err := ParsePoemRequest(ToolGeneratePoem, map[string]interface{}{
		"style": "not_a_style",
	}, DefaultPoemDefaults())

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "theme", missing.Field)
}

func TestParsePoemRequest_EmptyEnumUsesDefault(t *testing.T) {
	req, err := ParsePoemRequest(ToolGeneratePoem, map[string]interface{}{
		"theme": "the city at night",
		"mood":  "",
	}, DefaultPoemDefaults())
	require.NoError(t, err)
	assert.Equal(t, "inspiring", req.Mood)
}

func TestParsePoemRequest_UnknownTool(t *testing.T) {
	_, err := ParsePoemRequest("summarize_text", map[string]interface{}{
		"theme": "anything",
	}, DefaultPoemDefaults())
	require.Error(t, err)

	var unknown *UnknownToolError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "summarize_text", unknown.Tool)
	assert.True(t, errors.Is(err, ErrUnknownTool))
	assert.False(t, IsValidationError(err))
}

func TestRequiredTextField(t *testing.T) {
	field, ok := RequiredTextField(ToolHaikuGenerator)
	require.True(t, ok)
	assert.Equal(t, "subject", field)

	_, ok = RequiredTextField("nope")
	assert.False(t, ok)
}
