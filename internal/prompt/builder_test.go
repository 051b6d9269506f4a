package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/versecraft/poem-api/internal/models"
)

func TestBuildSystemPrompt(t *testing.T) {
	builder := NewPromptBuilder()

	prompt := builder.BuildSystemPrompt()
	require.NotEmpty(t, prompt)

	// System persona plus the length guidelines, in that order.
	assert.Contains(t, prompt, "poet")
	assert.Contains(t, prompt, "short")
	assert.Contains(t, prompt, "medium")
	assert.Contains(t, prompt, "long")
}

func TestBuildUserPrompt_GeneratePoem(t *testing.T) {
	builder := NewPromptBuilder()

	prompt := builder.BuildUserPrompt(&models.PoemRequest{
		Tool:   models.ToolGeneratePoem,
		Text:   "a lighthouse in a storm",
		Style:  "free_verse",
		Mood:   "mysterious",
		Length: "medium",
		Season: "winter",
	})

	assert.Equal(t, "Write a medium free verse poem about a lighthouse in a storm with a mysterious mood. Set it in winter.", prompt)
}

func TestBuildUserPrompt_SeasonAnyOmitted(t *testing.T) {
	builder := NewPromptBuilder()

	prompt := builder.BuildUserPrompt(&models.PoemRequest{
		Tool:   models.ToolQuickPoem,
		Text:   "courage",
		Style:  "free_verse",
		Mood:   "inspiring",
		Length: "medium",
		Season: "any",
	})

	assert.Equal(t, "Write a medium free verse poem about courage with a inspiring mood.", prompt)
	assert.NotContains(t, prompt, "Set it in")
}

func TestBuildUserPrompt_Haiku(t *testing.T) {
	builder := NewPromptBuilder()

	prompt := builder.BuildUserPrompt(&models.PoemRequest{
		Tool:   models.ToolHaikuGenerator,
		Text:   "cherry blossoms",
		Season: "spring",
	})

	assert.Contains(t, prompt, "Write a haiku about cherry blossoms.")
	assert.Contains(t, prompt, "5-7-5")
	assert.Contains(t, prompt, "Evoke spring imagery.")
}

func TestBuildUserPrompt_HaikuSeasonAny(t *testing.T) {
	builder := NewPromptBuilder()

	prompt := builder.BuildUserPrompt(&models.PoemRequest{
		Tool:   models.ToolHaikuGenerator,
		Text:   "the moon",
		Season: "any",
	})

	assert.NotContains(t, prompt, "imagery")
}

func TestBuildUserPrompt_Acrostic(t *testing.T) {
	builder := NewPromptBuilder()

	prompt := builder.BuildUserPrompt(&models.PoemRequest{
		Tool: models.ToolAcrosticPoem,
		Text: "hope",
		Mood: "inspiring",
	})

	assert.Contains(t, prompt, `"HOPE"`)
	assert.Contains(t, prompt, "exactly 4 lines")
	assert.Contains(t, prompt, "H, O, P, E")
	assert.Contains(t, prompt, "inspiring mood")
}

func TestBuildUserPrompt_Deterministic(t *testing.T) {
	builder := NewPromptBuilder()
	req := &models.PoemRequest{
		Tool:   models.ToolGeneratePoem,
		Text:   "rivers",
		Style:  "sonnet",
		Mood:   "sad",
		Length: "long",
		Season: "autumn",
	}

	first := builder.BuildUserPrompt(req)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, builder.BuildUserPrompt(req))
	}
}
