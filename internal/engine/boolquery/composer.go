// Package boolquery builds platform-specific boolean search strings from
// structured skill, title and location inputs. It is the deterministic
// fallback used when the AI query generator is unavailable.
package boolquery

import (
	"fmt"
	"strings"

	"github.com/hiapplyco/docintel/internal/engine/taxonomy"
)

// Platform selects the target search grammar.
type Platform string

const (
	PlatformLinkedIn Platform = "linkedin"
	PlatformGitHub   Platform = "github"
	PlatformGoogle   Platform = "google"
)

// Input is the structured request for a boolean query.
type Input struct {
	Required        []string `json:"required_skills"`
	Preferred       []string `json:"preferred_skills,omitempty"`
	Titles          []string `json:"titles,omitempty"`
	Exclude         []string `json:"exclude_terms,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Platform        Platform `json:"platform"`
}

// Query is the composed string together with its structural breakdown for
// display and debugging.
type Query struct {
	String         string     `json:"query"`
	Required       []string   `json:"required,omitempty"`
	OptionalGroups [][]string `json:"optional_groups,omitempty"`
	Excluded       []string   `json:"excluded,omitempty"`
}

// Composer assembles queries. The language set for GitHub qualifiers comes
// from the injected taxonomy config.
type Composer struct {
	languages map[string]bool
}

// NewComposer builds a composer whose recognized programming languages are
// taken from the taxonomy's language category.
func NewComposer(cfg taxonomy.Config) *Composer {
	languages := make(map[string]bool)
	for _, cat := range cfg.Categories {
		if cat.Name != taxonomy.CategoryLanguages {
			continue
		}
		for _, skill := range cat.Skills {
			languages[strings.ToLower(skill)] = true
		}
	}
	return &Composer{languages: languages}
}

// Compose builds the query for the input's platform. It is pure and
// side-effect free.
func (c *Composer) Compose(in Input) Query {
	switch in.Platform {
	case PlatformLinkedIn:
		return c.composeLinkedIn(in)
	case PlatformGitHub:
		return c.composeGitHub(in)
	default:
		return c.composeGoogle(in)
	}
}

func (c *Composer) composeLinkedIn(in Input) Query {
	q := Query{Required: in.Required, Excluded: in.Exclude}
	var b strings.Builder
	b.WriteString("site:linkedin.com/in/ ")

	b.WriteString(joinQuoted(in.Required, " AND "))

	if len(in.Preferred) > 0 {
		writeClause(&b, "AND ("+joinQuoted(in.Preferred, " OR ")+")")
		q.OptionalGroups = append(q.OptionalGroups, in.Preferred)
	}
	if len(in.Titles) > 0 {
		writeClause(&b, "AND ("+joinQuoted(in.Titles, " OR ")+")")
		q.OptionalGroups = append(q.OptionalGroups, in.Titles)
	}
	if len(in.Exclude) > 0 {
		writeClause(&b, "-("+joinQuoted(in.Exclude, " OR ")+")")
	}
	if in.ExperienceYears > 0 {
		writeClause(&b, fmt.Sprintf(`AND ("%d years" OR "%d+ years")`, in.ExperienceYears, in.ExperienceYears))
	}

	q.String = b.String()
	return q
}

func (c *Composer) composeGitHub(in Input) Query {
	q := Query{Required: in.Required}
	parts := make([]string, 0, len(in.Required)+2)
	parts = append(parts, in.Required...)
	for _, skill := range in.Required {
		if c.languages[strings.ToLower(skill)] {
			parts = append(parts, "language:"+strings.ToLower(skill))
		}
	}
	parts = append(parts, "in:readme")
	q.String = strings.Join(parts, " ")
	return q
}

func (c *Composer) composeGoogle(in Input) Query {
	q := Query{Required: in.Required}
	var b strings.Builder
	b.WriteString(joinQuoted(in.Required, " AND "))
	if len(in.Preferred) > 0 {
		writeClause(&b, "("+joinQuoted(in.Preferred, " OR ")+")")
		q.OptionalGroups = append(q.OptionalGroups, in.Preferred)
	}
	writeClause(&b, "(resume OR CV)")
	q.String = strings.TrimSpace(b.String())
	return q
}

// writeClause appends a clause with a single separating space, avoiding a
// double space when the builder still ends with one.
func writeClause(b *strings.Builder, clause string) {
	current := b.String()
	if current != "" && !strings.HasSuffix(current, " ") {
		b.WriteString(" ")
	}
	b.WriteString(clause)
}

func joinQuoted(terms []string, sep string) string {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			quoted = append(quoted, `"`+t+`"`)
		}
	}
	return strings.Join(quoted, sep)
}
