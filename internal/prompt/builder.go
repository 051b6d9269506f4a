package prompt

import (
	"fmt"
	"strings"

	"github.com/versecraft/poem-api/internal/models"
)

// Builder renders the natural-language prompts sent to the LLM providers.
// Rendering is a pure function of the validated request.
type Builder struct {
	loader *Loader
}

// NewPromptBuilder creates a new prompt builder
func NewPromptBuilder() *Builder {
	return &Builder{loader: NewPromptLoader()}
}

// BuildSystemPrompt assembles the poet system prompt
func (b *Builder) BuildSystemPrompt() string {
	return b.loader.GetSystemPrompt() + "\n\n" + b.loader.GetLengthGuidelines()
}

// BuildUserPrompt renders the per-tool instruction string for a validated
// request. The same request always yields the same prompt.
func (b *Builder) BuildUserPrompt(req *models.PoemRequest) string {
	switch req.Tool {
	case models.ToolHaikuGenerator:
		return b.buildHaikuPrompt(req)
	case models.ToolAcrosticPoem:
		return b.buildAcrosticPrompt(req)
	default:
		return b.buildPoemPrompt(req)
	}
}

// buildPoemPrompt covers generate_poem and quick_poem
func (b *Builder) buildPoemPrompt(req *models.PoemRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a %s %s poem about %s with a %s mood.",
		req.Length, displayEnum(req.Style), req.Text, req.Mood)
	if req.Season != "any" {
		fmt.Fprintf(&sb, " Set it in %s.", req.Season)
	}
	return sb.String()
}

func (b *Builder) buildHaikuPrompt(req *models.PoemRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a haiku about %s.", req.Text)
	sb.WriteString(" Follow the 5-7-5 syllable structure exactly: three lines of five, seven, and five syllables.")
	if req.Season != "any" {
		fmt.Fprintf(&sb, " Evoke %s imagery.", req.Season)
	}
	return sb.String()
}

func (b *Builder) buildAcrosticPrompt(req *models.PoemRequest) string {
	word := strings.ToUpper(req.Text)
	letters := make([]string, 0, len(word))
	for _, r := range word {
		letters = append(letters, string(r))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Write an acrostic poem using the word %q.", word)
	fmt.Fprintf(&sb, " The poem must have exactly %d lines, and each letter of the word, in order, must be the first letter of its line: %s.",
		len(letters), strings.Join(letters, ", "))
	fmt.Fprintf(&sb, " Give the poem a %s mood.", req.Mood)
	return sb.String()
}

// displayEnum converts an enum token to its prose form ("free_verse" ->
// "free verse")
func displayEnum(v string) string {
	return strings.ReplaceAll(v, "_", " ")
}
