// Package resume composes the segmenter, extractors and taxonomy matcher
// into a full parsed-resume structure with derived analytics.
package resume

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/hiapplyco/docintel/internal/engine/document"
	"github.com/hiapplyco/docintel/internal/engine/extract"
	"github.com/hiapplyco/docintel/internal/engine/seniority"
	"github.com/hiapplyco/docintel/internal/engine/taxonomy"
)

// Summary bounds for taking a summary section verbatim.
const (
	minSummaryLen = 50
	maxSummaryLen = 500
)

// Parsed is the aggregate result of analyzing one resume. All collections
// may be empty; analysis never fails.
type Parsed struct {
	Contact         extract.Contact              `json:"contact"`
	Summary         string                       `json:"summary,omitempty"`
	Experience      []extract.ExperienceEntry    `json:"experience,omitempty"`
	Education       []extract.EducationEntry     `json:"education,omitempty"`
	Skills          taxonomy.SkillSet            `json:"skills"`
	Certifications  []extract.CertificationEntry `json:"certifications,omitempty"`
	Projects        []extract.ProjectEntry       `json:"projects,omitempty"`
	ExperienceYears float64                      `json:"experience_years"`
	ExperienceLevel seniority.Level              `json:"experience_level"`
	Strengths       []string                     `json:"strengths,omitempty"`
	Recommendations []string                     `json:"recommendations,omitempty"`
}

// Analyzer parses resume text. The taxonomy matcher is injected so the
// vocabulary can be swapped without global state.
type Analyzer struct {
	tax     *taxonomy.Matcher
	toggles document.Toggles
	now     func() time.Time
}

// NewAnalyzer builds an analyzer over the provided taxonomy config.
func NewAnalyzer(cfg taxonomy.Config, toggles document.Toggles) *Analyzer {
	return &Analyzer{
		tax:     taxonomy.NewMatcher(cfg),
		toggles: toggles,
		now:     time.Now,
	}
}

// Parse analyzes resume text into a Parsed structure. It is total: malformed
// input produces empty fields, never an error.
func (a *Analyzer) Parse(text string) *Parsed {
	sections := document.Segment(text, a.toggles)
	scan := extract.TechScanner(a.tax.Scan)

	parsed := &Parsed{}
	if a.toggles.Contact {
		parsed.Contact = extract.ExtractContact(text)
	}
	if a.toggles.Experience {
		parsed.Experience = extract.ExtractExperience(document.FindSection(sections, document.KindExperience), scan, a.now())
		sortByRecency(parsed.Experience, a.now())
	}
	if a.toggles.Education {
		parsed.Education = extract.ExtractEducation(document.FindSection(sections, document.KindEducation))
	}
	if a.toggles.Skills {
		parsed.Skills = a.tax.Match(text, document.FindSection(sections, document.KindSkills))
	}
	if a.toggles.Certifications {
		parsed.Certifications = extract.ExtractCertifications(document.FindSection(sections, document.KindCertifications))
	}
	if a.toggles.Projects {
		parsed.Projects = extract.ExtractProjects(document.FindSection(sections, document.KindProjects), scan)
	}

	parsed.ExperienceYears = a.totalYears(parsed.Experience)
	parsed.ExperienceLevel = seniority.FromYears(parsed.ExperienceYears)

	if a.toggles.Summary {
		parsed.Summary = a.summaryFor(parsed, document.FindSection(sections, document.KindSummary))
	}

	parsed.Strengths, parsed.Recommendations = assess(parsed)
	return parsed
}

// totalYears sums per-entry durations in months and converts to years,
// rounded to one decimal.
func (a *Analyzer) totalYears(entries []extract.ExperienceEntry) float64 {
	months := 0
	for _, e := range entries {
		if e.StartDate == "" {
			continue
		}
		r := extract.DateRange{Start: e.StartDate, End: e.EndDate, Present: strings.EqualFold(e.EndDate, "present")}
		months += extract.Months(r, a.now())
	}
	return math.Round(float64(months)/12*10) / 10
}

// summaryFor returns the summary section verbatim when its length is within
// bounds, otherwise synthesizes one from the most recent title and top
// skills.
func (a *Analyzer) summaryFor(p *Parsed, section string) string {
	section = strings.TrimSpace(section)
	if n := len(section); n >= minSummaryLen && n <= maxSummaryLen {
		return section
	}

	title := "professional"
	if len(p.Experience) > 0 && p.Experience[0].Title != "" {
		title = p.Experience[0].Title
	}
	skills := p.Skills.Flat()
	if len(skills) > 3 {
		skills = skills[:3]
	}
	expertise := "a broad range of technologies"
	if len(skills) > 0 {
		expertise = strings.Join(skills, ", ")
	}
	return fmt.Sprintf("Experienced %s with expertise in %s. %.1f+ years of experience delivering results in professional environments.",
		title, expertise, p.ExperienceYears)
}

// sortByRecency orders entries most recent first. Open-ended entries sort
// before any entry with a literal end date; order is stable under equal
// dates.
func sortByRecency(entries []extract.ExperienceEntry, now time.Time) {
	sort.SliceStable(entries, func(i, j int) bool {
		return recencyKey(entries[i], now).After(recencyKey(entries[j], now))
	})
}

func recencyKey(e extract.ExperienceEntry, now time.Time) time.Time {
	if strings.EqualFold(e.EndDate, "present") || strings.EqualFold(e.EndDate, "current") {
		// Sorts ahead of every literal end date.
		return now.AddDate(100, 0, 0)
	}
	if t, ok := extract.ParseDateToken(e.EndDate, now); ok {
		return t
	}
	if t, ok := extract.ParseDateToken(e.StartDate, now); ok {
		return t
	}
	return time.Time{}
}

// assess runs the fixed battery of presence checks producing strengths and
// recommendations.
func assess(p *Parsed) (strengths, recommendations []string) {
	if p.Contact.Email != "" {
		strengths = append(strengths, "Contact email is present")
	} else {
		recommendations = append(recommendations, "Add an email address so recruiters can reach you")
	}
	if p.Contact.LinkedIn != "" {
		strengths = append(strengths, "LinkedIn profile is linked")
	} else {
		recommendations = append(recommendations, "Link your LinkedIn profile")
	}
	if len(p.Projects) > 0 {
		strengths = append(strengths, "Includes personal or professional projects")
	} else {
		recommendations = append(recommendations, "Add a projects section to showcase hands-on work")
	}
	if len(p.Certifications) > 0 {
		strengths = append(strengths, "Holds professional certifications")
	}
	if len(p.Skills.Flat()) >= 5 {
		strengths = append(strengths, "Broad technical skill coverage")
	} else {
		recommendations = append(recommendations, "List more of the technologies you have worked with")
	}
	if quantifiedBullets(p.Experience) {
		strengths = append(strengths, "Experience bullets include quantified results")
	} else if len(p.Experience) > 0 {
		recommendations = append(recommendations, "Quantify achievements in experience bullets (numbers, percentages)")
	}
	if p.Summary != "" && len(p.Summary) >= minSummaryLen {
		strengths = append(strengths, "Has a substantive professional summary")
	}
	return strengths, recommendations
}

func quantifiedBullets(entries []extract.ExperienceEntry) bool {
	for _, e := range entries {
		for _, b := range e.Responsibilities {
			if strings.ContainsAny(b, "0123456789%") {
				return true
			}
		}
	}
	return false
}
