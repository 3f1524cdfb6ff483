package gemini

import (
	"strings"
	"testing"
)

func TestQueryPrompt(t *testing.T) {
	prompt := QueryPrompt("find senior go engineers in Berlin", "linkedin")

	if !strings.Contains(prompt, "find senior go engineers in Berlin") {
		t.Fatal("prompt should carry the instructions verbatim")
	}
	if !strings.Contains(prompt, "linkedin") {
		t.Fatal("prompt should name the target platform")
	}
	if strings.Contains(prompt, "{{INSTRUCTIONS}}") || strings.Contains(prompt, "{{PLATFORM}}") {
		t.Fatal("template placeholders must be replaced")
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	_, err := NewGenerator(t.Context(), "   ", "")
	if err == nil {
		t.Fatal("expected an error for a blank api key")
	}
}

func TestGeneratorModel(t *testing.T) {
	g := &Generator{modelName: "gemini-2.5-flash"}
	if g.Model() != "gemini-2.5-flash" {
		t.Fatalf("unexpected model: %q", g.Model())
	}

	var nilGen *Generator
	if nilGen.Model() != "" {
		t.Fatal("nil generator should report an empty model")
	}
}
