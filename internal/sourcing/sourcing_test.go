package sourcing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hiapplyco/docintel/internal/engine/boolquery"
	"github.com/hiapplyco/docintel/internal/engine/taxonomy"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestService(gen *stubGenerator) *QueryService {
	composer := boolquery.NewComposer(taxonomy.DefaultConfig())
	if gen == nil {
		return NewQueryService(nil, composer, nil, time.Second)
	}
	return NewQueryService(gen, composer, nil, time.Second)
}

func TestBuildQueryFromAI(t *testing.T) {
	gen := &stubGenerator{response: "```\nsite:linkedin.com/in/ \"Go\" AND \"Kubernetes\"\n```"}
	service := newTestService(gen)

	built := service.BuildQuery(context.Background(), "go and kubernetes people", boolquery.PlatformLinkedIn)

	if !built.FromAI {
		t.Fatal("expected the AI query to be used")
	}
	if built.Query != `site:linkedin.com/in/ "Go" AND "Kubernetes"` {
		t.Fatalf("unexpected query: %q", built.Query)
	}
	if built.Fallback != nil {
		t.Fatal("fallback should not be populated on the AI path")
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("expected 1 generator call, got %d", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[0], "go and kubernetes people") {
		t.Fatal("prompt should carry the instructions")
	}
	if !strings.Contains(gen.prompts[0], "linkedin") {
		t.Fatal("prompt should carry the platform")
	}
}

func TestBuildQueryFallsBackOnError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("service unavailable")}
	service := newTestService(gen)

	built := service.BuildQuery(context.Background(), "find python developers", boolquery.PlatformLinkedIn)

	if built.FromAI {
		t.Fatal("expected the deterministic fallback")
	}
	if !strings.HasPrefix(built.Query, "site:linkedin.com/in/ ") {
		t.Fatalf("unexpected fallback query: %q", built.Query)
	}
	if !strings.Contains(built.Query, `"Python"`) {
		t.Fatalf("fallback query should mention the skill: %q", built.Query)
	}
	if built.Fallback == nil {
		t.Fatal("fallback breakdown should be populated")
	}
}

func TestBuildQueryFallsBackOnEmptyResponse(t *testing.T) {
	gen := &stubGenerator{response: "```\n\n```"}
	service := newTestService(gen)

	built := service.BuildQuery(context.Background(), "find go developers", boolquery.PlatformGitHub)

	if built.FromAI {
		t.Fatal("expected the deterministic fallback for an empty AI response")
	}
	if !strings.Contains(built.Query, "in:readme") {
		t.Fatalf("unexpected github fallback query: %q", built.Query)
	}
}

func TestBuildQueryWithoutGenerator(t *testing.T) {
	service := newTestService(nil)

	built := service.BuildQuery(context.Background(), "", boolquery.PlatformLinkedIn)

	if built.FromAI {
		t.Fatal("expected composer-only mode")
	}
	// Empty instructions still produce the platform scoping prefix.
	if built.Query != "site:linkedin.com/in/ " {
		t.Fatalf("unexpected query for empty instructions: %q", built.Query)
	}
}

func TestBuildQueryUsesFirstLineOnly(t *testing.T) {
	gen := &stubGenerator{response: "\"Go\" AND \"Rust\"\nSecond line of chatter"}
	service := newTestService(gen)

	built := service.BuildQuery(context.Background(), "go or rust", boolquery.PlatformGoogle)

	if built.Query != `"Go" AND "Rust"` {
		t.Fatalf("unexpected query: %q", built.Query)
	}
}
