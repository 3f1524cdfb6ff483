package match

import (
	"fmt"
	"math"
	"strings"

	"github.com/hiapplyco/docintel/internal/engine/job"
	"github.com/hiapplyco/docintel/internal/engine/resume"
	"github.com/hiapplyco/docintel/internal/engine/seniority"
)

// Factor is one weighted sub-score of the match.
type Factor struct {
	Score    float64  `json:"score"`
	Weight   float64  `json:"weight"`
	Weighted float64  `json:"weighted_score"`
	Matched  []string `json:"matched,omitempty"`
	Missing  []string `json:"missing,omitempty"`
}

// Report is the complete match result.
type Report struct {
	Skills             Factor   `json:"skills"`
	Experience         Factor   `json:"experience"`
	Education          Factor   `json:"education"`
	Other              Factor   `json:"other"`
	Overall            int      `json:"overall_score"`
	Category           string   `json:"category"`
	Gaps               []string `json:"gaps,omitempty"`
	Strengths          []string `json:"strengths,omitempty"`
	Recommendations    []string `json:"recommendations,omitempty"`
	InterviewQuestions []string `json:"interview_questions,omitempty"`
}

// Scorer computes match reports under one policy.
type Scorer struct {
	policy Policy
}

// NewScorer builds a scorer with the provided policy.
func NewScorer(policy Policy) *Scorer {
	return &Scorer{policy: policy}
}

// Score computes the weighted match between a resume and a job. A nil
// weights pointer selects the defaults; supplied weights are used literally
// without renormalization.
func (s *Scorer) Score(r *resume.Parsed, j *job.Parsed, weights *Weights) *Report {
	w := DefaultWeights()
	if weights != nil {
		w = *weights
	}

	report := &Report{}
	report.Skills = s.scoreSkills(r, j)
	report.Experience = s.scoreExperience(r, j)
	report.Education = s.scoreEducation(r, j)
	report.Other = s.scoreOther(r)

	report.Skills = weighted(report.Skills, w.Skills)
	report.Experience = weighted(report.Experience, w.Experience)
	report.Education = weighted(report.Education, w.Education)
	report.Other = weighted(report.Other, w.Other)

	total := report.Skills.Weighted + report.Experience.Weighted +
		report.Education.Weighted + report.Other.Weighted
	report.Overall = int(math.Round(total))
	report.Category = s.policy.category(total)

	s.narrate(report, r, j)
	return report
}

func weighted(f Factor, weight float64) Factor {
	f.Weight = weight
	f.Weighted = f.Score * weight
	return f
}

// scoreSkills scores required-skill coverage up to RequiredPoints and
// preferred coverage up to PreferredPoints. An empty list awards its full
// share. Matching is case-insensitive symmetric substring containment.
func (s *Scorer) scoreSkills(r *resume.Parsed, j *job.Parsed) Factor {
	candidate := r.Skills.Flat()
	f := Factor{}

	if len(j.RequiredSkills) == 0 {
		f.Score = s.policy.RequiredPoints
	} else {
		matched := 0
		for _, req := range j.RequiredSkills {
			if hasSkill(candidate, req) {
				matched++
				f.Matched = append(f.Matched, req)
			} else {
				f.Missing = append(f.Missing, req)
			}
		}
		f.Score = float64(matched) / float64(len(j.RequiredSkills)) * s.policy.RequiredPoints
	}

	if len(j.PreferredSkills) == 0 {
		f.Score += s.policy.PreferredPoints
	} else {
		matched := 0
		for _, pref := range j.PreferredSkills {
			if hasSkill(candidate, pref) {
				matched++
				f.Matched = append(f.Matched, pref)
			}
		}
		f.Score += float64(matched) / float64(len(j.PreferredSkills)) * s.policy.PreferredPoints
	}

	f.Score = clamp(f.Score)
	return f
}

// hasSkill reports whether any candidate skill matches the requirement by
// symmetric substring containment, case-insensitive.
func hasSkill(candidate []string, requirement string) bool {
	req := strings.ToLower(requirement)
	for _, skill := range candidate {
		sk := strings.ToLower(skill)
		if strings.Contains(sk, req) || strings.Contains(req, sk) {
			return true
		}
	}
	return false
}

func (s *Scorer) scoreExperience(r *resume.Parsed, j *job.Parsed) Factor {
	p := s.policy
	score := p.ExperienceBase

	if j.ExperienceYears > 0 {
		switch {
		case r.ExperienceYears >= j.ExperienceYears:
			score += p.MeetYearsBonus
			if r.ExperienceYears > j.ExperienceYears*p.ExceedYearsFactor {
				score += p.ExceedYearsBonus
			}
		default:
			shortfall := j.ExperienceYears - r.ExperienceYears
			score -= shortfall / j.ExperienceYears * p.ShortfallPenalty
		}
	} else {
		// No stated requirement: having any experience meets it.
		if r.ExperienceYears > 0 {
			score += p.MeetYearsBonus
		}
	}

	switch seniority.Distance(r.ExperienceLevel, j.Level) {
	case 0:
		score += p.LevelExactBonus
	case 1:
		score += p.LevelAdjacentBonus
	}

	return Factor{Score: clamp(score)}
}

var degreeRank = map[string]int{"associate": 1, "bachelor": 2, "master": 3, "phd": 4}

func (s *Scorer) scoreEducation(r *resume.Parsed, j *job.Parsed) Factor {
	p := s.policy
	if !j.Education.Required {
		return Factor{Score: 100}
	}
	if len(r.Education) == 0 {
		return Factor{Score: clamp(p.NoEducationBase)}
	}

	score := p.EducationBase
	if satisfiesDegree(r, j.Education.DegreeLevel) {
		score += p.DegreeBonus
	}
	if hasTechnicalField(r) {
		score += p.FieldBonus
	}
	return Factor{Score: clamp(score)}
}

// satisfiesDegree is intentionally lenient upward: a master's satisfies a
// bachelor's requirement but not the reverse.
func satisfiesDegree(r *resume.Parsed, required string) bool {
	need, ok := degreeRank[required]
	if !ok {
		// Requirement stated but level unrecognized: any degree counts.
		return true
	}
	for _, e := range r.Education {
		if level := degreeLevelOf(e.Degree); degreeRank[level] >= need {
			return true
		}
	}
	return false
}

func degreeLevelOf(degree string) string {
	d := strings.ToLower(degree)
	switch {
	case strings.Contains(d, "phd"), strings.Contains(d, "ph.d"), strings.Contains(d, "doctor"):
		return "phd"
	case strings.Contains(d, "master"), strings.Contains(d, "mba"), strings.Contains(d, "m.s"), strings.Contains(d, "m.a"):
		return "master"
	case strings.Contains(d, "bachelor"), strings.Contains(d, "b.s"), strings.Contains(d, "b.a"):
		return "bachelor"
	case strings.Contains(d, "associate"):
		return "associate"
	default:
		return ""
	}
}

var technicalFieldRe = []string{
	"computer", "software", "information", "engineering", "mathematics",
	"data", "electrical", "technology",
}

func hasTechnicalField(r *resume.Parsed) bool {
	for _, e := range r.Education {
		field := strings.ToLower(e.Degree + " " + e.Institution)
		for _, kw := range technicalFieldRe {
			if strings.Contains(field, kw) {
				return true
			}
		}
	}
	return false
}

func (s *Scorer) scoreOther(r *resume.Parsed) Factor {
	p := s.policy
	score := p.OtherBase
	if len(r.Projects) > 0 {
		score += p.ProjectBonus
	}
	if len(r.Certifications) > 0 {
		score += p.CertificationBonus
	}
	if len(r.Summary) > p.SummaryMinLen {
		score += p.SummaryBonus
	}
	if r.Contact.Email != "" && r.Contact.LinkedIn != "" {
		score += p.ContactBonus
	}
	return Factor{Score: clamp(score)}
}

// narrate derives gaps, strengths, recommendations and interview questions
// from the sub-scores and missing-skill sets.
func (s *Scorer) narrate(report *Report, r *resume.Parsed, j *job.Parsed) {
	for _, missing := range report.Skills.Missing {
		report.Gaps = append(report.Gaps, fmt.Sprintf("Missing required skill: %s", missing))
	}
	if report.Experience.Score < 50 {
		report.Gaps = append(report.Gaps, fmt.Sprintf("Experience falls short of the %.0f years the role asks for", j.ExperienceYears))
	}
	if report.Education.Score < 60 && j.Education.Required {
		report.Gaps = append(report.Gaps, "Education does not meet the stated degree requirement")
	}

	if report.Skills.Score >= 90 {
		report.Strengths = append(report.Strengths, "Covers nearly all required skills")
	} else if len(report.Skills.Matched) > 0 {
		report.Strengths = append(report.Strengths,
			fmt.Sprintf("Matches %d of the posting's skills, including %s", len(report.Skills.Matched), report.Skills.Matched[0]))
	}
	if report.Experience.Score >= 80 {
		report.Strengths = append(report.Strengths, "Experience level and tenure align with the role")
	}

	if len(report.Skills.Missing) > 0 {
		top := report.Skills.Missing[0]
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Probe for transferable experience with %s before ruling the candidate out", top))
		report.InterviewQuestions = append(report.InterviewQuestions,
			fmt.Sprintf("Tell me about a time you had to pick up a technology like %s quickly. How did you approach it?", top),
			fmt.Sprintf("How would your experience with %s translate to working with %s?", firstOr(r.Skills.Flat(), "your core stack"), top),
		)
	} else {
		report.Recommendations = append(report.Recommendations, "Advance to a technical screen; no required skills are missing")
	}
	if report.Overall < int(s.policy.ModerateAt) {
		report.Recommendations = append(report.Recommendations, "Consider other candidates; the overall fit is weak")
	}
}

func firstOr(items []string, fallback string) string {
	if len(items) > 0 {
		return items[0]
	}
	return fallback
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
