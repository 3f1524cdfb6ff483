package enhance

import (
	"strings"
	"testing"

	"github.com/hiapplyco/docintel/internal/engine/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roughPosting = `We are looking for a rockstar Software Engineer.
Candidates must have Go experience. This hybrid role suits self-starters.
• Build and operate backend services
`

func newTestEnhancer() *Enhancer {
	return NewEnhancer(taxonomy.DefaultConfig())
}

func TestEnhanceAllGoals(t *testing.T) {
	result := newTestEnhancer().Enhance(roughPosting, Options{CompanyName: "Initech"})

	assert.Contains(t, result.Content, "# Software Engineer")
	assert.Contains(t, result.Content, "Initech")
	assert.Contains(t, result.Content, "## About the Role")
	assert.Contains(t, result.Content, "We're seeking a passionate")
	assert.NotContains(t, result.Content, "rockstar")
	assert.Contains(t, result.Content, "talented professional")
	assert.Contains(t, result.Content, "ideally have")
	assert.Contains(t, result.Content, "equal opportunity")
	assert.Contains(t, result.Content, "Apply now")
	assert.NotEmpty(t, result.Improvements)
}

func TestEnhanceIdempotent(t *testing.T) {
	e := newTestEnhancer()
	opts := Options{CompanyName: "Initech"}

	first := e.Enhance(roughPosting, opts)
	second := e.Enhance(first.Content, opts)

	assert.Equal(t, 1, strings.Count(second.Content, "equal opportunity employer"))
	assert.Equal(t, 1, strings.Count(second.Content, "Apply now"))
	// Headers from the first pass suppress re-structuring.
	assert.Equal(t, 1, strings.Count(second.Content, "## About the Role"))
}

func TestEnhanceSelectedGoalsOnly(t *testing.T) {
	result := newTestEnhancer().Enhance(roughPosting, Options{Goals: []Goal{GoalInclusivity}})

	// Structure transform was not requested.
	assert.NotContains(t, result.Content, "## About the Role")
	assert.NotContains(t, result.Content, "rockstar")
	// Closing lines are ensured regardless of goals.
	assert.Contains(t, result.Content, "equal opportunity")
	assert.Contains(t, result.Content, "Apply now")
}

func TestEnhanceSEOAddsLocation(t *testing.T) {
	result := newTestEnhancer().Enhance(roughPosting, Options{
		Goals:    []Goal{GoalSEO},
		Location: "Austin, TX",
	})

	assert.Contains(t, result.Content, "Location: Austin, TX.")
	assert.Contains(t, result.Improvements, "Added the location for search visibility")
}

func TestEnhanceUntitledPosting(t *testing.T) {
	result := newTestEnhancer().Enhance("A vague posting about nothing in particular.", Options{Goals: []Goal{GoalStructure}})

	assert.Contains(t, result.Content, "# Open Position")
}

func TestEnsureClosing(t *testing.T) {
	content, notes := ensureClosing("Short posting.")
	require.Len(t, notes, 2)
	assert.Contains(t, content, eoStatement)
	assert.Contains(t, content, ctaLine)

	again, notes := ensureClosing(content)
	assert.Empty(t, notes)
	assert.Equal(t, content, again)
}

func TestToneTransform(t *testing.T) {
	content, notes := toneTransform{}.apply("The ideal candidate will lead the team.", Options{}, nil)

	assert.Equal(t, "You will lead the team.", content)
	require.Len(t, notes, 1)
}
