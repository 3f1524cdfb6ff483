package gemini

import (
	"strings"

	_ "embed"
)

//go:embed prompt.md
var queryPromptTemplate string

// QueryPrompt renders the embedded sourcing-query prompt for the given
// free-text instructions and target platform.
func QueryPrompt(instructions, platform string) string {
	template := queryPromptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Write a boolean search query for {{PLATFORM}} matching these instructions:\n{{INSTRUCTIONS}}\n\nQuery:"
	}
	prompt := strings.ReplaceAll(template, "{{INSTRUCTIONS}}", instructions)
	prompt = strings.ReplaceAll(prompt, "{{PLATFORM}}", platform)
	return prompt
}
