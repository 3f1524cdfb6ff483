// Package sourcing builds candidate search queries, preferring the external
// AI generator and degrading to the deterministic boolean composer when the
// generator times out or fails.
package sourcing

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hiapplyco/docintel/internal/ai"
	"github.com/hiapplyco/docintel/internal/ai/gemini"
	"github.com/hiapplyco/docintel/internal/cleaner"
	"github.com/hiapplyco/docintel/internal/engine/boolquery"
	"github.com/hiapplyco/docintel/internal/logger"
)

// Profile is one candidate result returned by the external search service.
type Profile struct {
	Name       string   `json:"name,omitempty"`
	Title      string   `json:"title,omitempty"`
	Company    string   `json:"company,omitempty"`
	Location   string   `json:"location,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	ProfileURL string   `json:"profile_url"`
	Source     string   `json:"source"`
	Snippet    string   `json:"snippet,omitempty"`
}

// SearchClient is the contract of the external web-search collaborator that
// consumes composed queries. It is not implemented by this engine.
type SearchClient interface {
	Search(ctx context.Context, query string, maxResults int) ([]Profile, error)
}

// BuiltQuery reports where a query came from alongside the string itself.
type BuiltQuery struct {
	Query    string           `json:"query"`
	FromAI   bool             `json:"from_ai"`
	Fallback *boolquery.Query `json:"fallback,omitempty"`
}

// QueryService builds search queries with an AI-first, deterministic-second
// strategy.
type QueryService struct {
	gen      ai.Generator
	composer *boolquery.Composer
	logger   *zap.Logger
	timeout  time.Duration
}

// NewQueryService wires a query service. A nil generator is allowed and
// sends every request straight to the composer.
func NewQueryService(gen ai.Generator, composer *boolquery.Composer, log *zap.Logger, timeout time.Duration) *QueryService {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = ai.DefaultTimeout
	}
	return &QueryService{gen: gen, composer: composer, logger: log, timeout: timeout}
}

// BuildQuery turns free-text sourcing instructions into a platform query.
// AI failures are absorbed: the deterministic composer result is returned
// and the failure is only logged.
func (s *QueryService) BuildQuery(ctx context.Context, instructions string, platform boolquery.Platform) BuiltQuery {
	if s.gen != nil {
		prompt := gemini.QueryPrompt(instructions, string(platform))
		outcome := ai.CallWithDeadline(ctx, s.gen, prompt, s.timeout)
		if outcome.State == ai.StateOK {
			if query := firstLine(cleaner.StripFences(outcome.Text)); query != "" {
				s.logger.Debug("using AI generated query",
					zap.String("platform", string(platform)),
					zap.String("query_preview", logger.TruncateForLog(query, 120)),
				)
				return BuiltQuery{Query: query, FromAI: true}
			}
			s.logger.Warn("AI generator returned an unusable query; falling back")
		} else {
			s.logger.Warn("AI query generation unavailable; using deterministic composer",
				zap.String("state", outcome.State.String()),
				zap.Error(outcome.Err),
			)
		}
	}

	in := boolquery.FromInstructions(instructions)
	in.Platform = platform
	composed := s.composer.Compose(in)
	return BuiltQuery{Query: composed.String, Fallback: &composed}
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
