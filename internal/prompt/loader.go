package prompt

import (
	"strings"

	"github.com/versecraft/poem-api/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetSystemPrompt loads the poet system prompt
func (l *Loader) GetSystemPrompt() string {
	return strings.TrimSpace(string(embedded.SystemPromptTxt))
}

// GetLengthGuidelines loads the length guidance appended to the system prompt
func (l *Loader) GetLengthGuidelines() string {
	return strings.TrimSpace(string(embedded.LengthGuidelinesTxt))
}
