package embedded

import (
	_ "embed"
)

// Embed the prompt data files
//
//go:embed data/system_prompt.txt
var SystemPromptTxt []byte

//go:embed data/length_guidelines.txt
var LengthGuidelinesTxt []byte
