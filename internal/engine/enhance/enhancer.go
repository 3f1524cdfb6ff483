// Package enhance rewrites job description text for structure, tone, SEO and
// inclusivity using rule-based transforms. Transforms are applied as an
// ordered chain; each reports the improvements it made. Re-running the
// enhancer on its own output does not duplicate inserted content.
package enhance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hiapplyco/docintel/internal/engine/job"
	"github.com/hiapplyco/docintel/internal/engine/taxonomy"
)

// Goal selects which transforms run.
type Goal string

const (
	GoalStructure   Goal = "structure"
	GoalTone        Goal = "tone"
	GoalSEO         Goal = "seo"
	GoalInclusivity Goal = "inclusivity"
)

// AllGoals lists every transform goal in application order.
func AllGoals() []Goal {
	return []Goal{GoalStructure, GoalTone, GoalSEO, GoalInclusivity}
}

// Options configures one enhancement run.
type Options struct {
	CompanyName string
	Location    string
	Goals       []Goal
}

// Result is the rewritten description plus the list of applied improvements.
type Result struct {
	Content      string   `json:"content"`
	Improvements []string `json:"improvements,omitempty"`
}

// transform is a single named rewrite step in the enhancement chain.
type transform interface {
	name() Goal
	apply(content string, opts Options, j *job.Parsed) (string, []string)
}

// Enhancer applies the transform chain to job descriptions.
type Enhancer struct {
	analyzer *job.Analyzer
	chain    []transform
}

// NewEnhancer builds an enhancer whose extraction primitives share the
// provided taxonomy config.
func NewEnhancer(cfg taxonomy.Config) *Enhancer {
	return &Enhancer{
		analyzer: job.NewAnalyzer(cfg),
		chain: []transform{
			structureTransform{},
			toneTransform{},
			seoTransform{},
			inclusivityTransform{},
		},
	}
}

// Enhance rewrites the description according to the requested goals. An
// empty goal list applies every transform. The closing equal-opportunity
// statement and call-to-action are always ensured, and only appended when
// absent so the operation is idempotent.
func (e *Enhancer) Enhance(text string, opts Options) Result {
	if len(opts.Goals) == 0 {
		opts.Goals = AllGoals()
	}
	requested := make(map[Goal]bool, len(opts.Goals))
	for _, g := range opts.Goals {
		requested[g] = true
	}

	parsed := e.analyzer.Analyze(text)
	content := strings.TrimSpace(text)
	var improvements []string

	for _, t := range e.chain {
		if !requested[t.name()] {
			continue
		}
		next, notes := t.apply(content, opts, parsed)
		content = next
		improvements = append(improvements, notes...)
	}

	content, notes := ensureClosing(content)
	improvements = append(improvements, notes...)

	return Result{Content: content, Improvements: improvements}
}

const (
	eoStatement = "We are an equal opportunity employer and value diversity. All qualified applicants will receive consideration without regard to race, religion, gender, age, or disability status."
	ctaLine     = "Apply now and tell us what you would bring to the team."
)

// ensureClosing appends the equal-opportunity statement and call-to-action
// when the text does not already carry them.
func ensureClosing(content string) (string, []string) {
	var notes []string
	if !regexp.MustCompile(`(?i)equal opportunity`).MatchString(content) {
		content += "\n\n" + eoStatement
		notes = append(notes, "Added an equal opportunity statement")
	}
	if !regexp.MustCompile(`(?i)apply now`).MatchString(content) {
		content += "\n\n" + ctaLine
		notes = append(notes, "Added a closing call-to-action")
	}
	return content, notes
}

// --- structure ---

type structureTransform struct{}

func (structureTransform) name() Goal { return GoalStructure }

// apply prepends a titled header and an "About the Role" lead, and renders a
// responsibilities and skills outline when the posting has extractable
// content and no headers of its own.
func (structureTransform) apply(content string, opts Options, j *job.Parsed) (string, []string) {
	if strings.Contains(content, "## ") {
		return content, nil
	}

	var b strings.Builder
	var notes []string

	title := j.Title
	if title == "" {
		title = "Open Position"
	}
	fmt.Fprintf(&b, "# %s\n", title)
	if opts.CompanyName != "" {
		fmt.Fprintf(&b, "%s\n", opts.CompanyName)
	}
	b.WriteString("\n## About the Role\n")
	b.WriteString(content)
	notes = append(notes, "Added a structured header")

	if len(j.Responsibilities) > 0 && !strings.Contains(strings.ToLower(content), "## what you'll do") {
		b.WriteString("\n\n## What You'll Do\n")
		for _, r := range j.Responsibilities {
			fmt.Fprintf(&b, "- %s\n", r)
		}
		notes = append(notes, "Outlined responsibilities as a bulleted section")
	}
	if skills := append(append([]string{}, j.RequiredSkills...), j.PreferredSkills...); len(skills) > 0 {
		b.WriteString("\n## Skills\n")
		for _, s := range skills {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		notes = append(notes, "Listed extracted skills in a dedicated section")
	}

	return strings.TrimSpace(b.String()), notes
}

// --- tone ---

type toneTransform struct{}

func (toneTransform) name() Goal { return GoalTone }

var tonePhrases = []struct{ from, to string }{
	{"We are looking for", "We're seeking a passionate"},
	{"We are seeking", "We're seeking a passionate"},
	{"The ideal candidate will", "You will"},
	{"The successful candidate", "You"},
	{"is required to", "will"},
}

func (toneTransform) apply(content string, _ Options, _ *job.Parsed) (string, []string) {
	var notes []string
	for _, p := range tonePhrases {
		if strings.Contains(content, p.from) {
			content = strings.ReplaceAll(content, p.from, p.to)
			notes = append(notes, fmt.Sprintf("Rewrote %q for a more engaging tone", p.from))
		}
	}
	return content, notes
}

// --- seo ---

type seoTransform struct{}

func (seoTransform) name() Goal { return GoalSEO }

func (seoTransform) apply(content string, opts Options, j *job.Parsed) (string, []string) {
	var notes []string
	lowered := strings.ToLower(content)

	if j.RemotePolicy != job.RemoteOnSite && !strings.Contains(lowered, "remote") {
		content += "\n\nThis role offers remote work options."
		notes = append(notes, "Added a remote-work keyword for search visibility")
	}
	if opts.Location != "" && !strings.Contains(lowered, strings.ToLower(opts.Location)) {
		content += fmt.Sprintf("\n\nLocation: %s.", opts.Location)
		notes = append(notes, "Added the location for search visibility")
	}
	return content, notes
}

// --- inclusivity ---

type inclusivityTransform struct{}

func (inclusivityTransform) name() Goal { return GoalInclusivity }

var bannedTerms = []struct{ from, to string }{
	{"guys", "team members"},
	{"ninja", "expert"},
	{"rockstar", "talented professional"},
	{"must have", "ideally have"},
	{"he/she", "they"},
}

func (inclusivityTransform) apply(content string, _ Options, _ *job.Parsed) (string, []string) {
	var notes []string
	for _, t := range bannedTerms {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(t.from) + `\b`)
		if re.MatchString(content) {
			content = re.ReplaceAllString(content, t.to)
			notes = append(notes, fmt.Sprintf("Replaced %q with %q", t.from, t.to))
		}
	}
	return content, notes
}
