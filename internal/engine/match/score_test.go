package match

import (
	"testing"

	"github.com/hiapplyco/docintel/internal/engine/extract"
	"github.com/hiapplyco/docintel/internal/engine/job"
	"github.com/hiapplyco/docintel/internal/engine/resume"
	"github.com/hiapplyco/docintel/internal/engine/seniority"
	"github.com/hiapplyco/docintel/internal/engine/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strongResume() *resume.Parsed {
	return &resume.Parsed{
		Contact: extract.Contact{Email: "jane@example.com", LinkedIn: "linkedin.com/in/janedoe"},
		Summary: "Backend engineer with a decade of experience building distributed systems and leading small teams to ship reliable services.",
		Skills: taxonomy.SkillSet{Technical: []taxonomy.CategoryGroup{
			{Category: "Programming Languages", Skills: []string{"Go", "Python"}},
			{Category: "Databases", Skills: []string{"PostgreSQL"}},
		}},
		Education: []extract.EducationEntry{
			{Degree: "Bachelor of Science in Computer Science", Institution: "State University"},
		},
		Projects:        []extract.ProjectEntry{{Name: "Chat Server"}},
		Certifications:  []extract.CertificationEntry{{Name: "CKA"}},
		ExperienceYears: 8,
		ExperienceLevel: seniority.Senior,
	}
}

func demandingJob() *job.Parsed {
	return &job.Parsed{
		Title:           "Senior Backend Engineer",
		Level:           seniority.Senior,
		ExperienceYears: 5,
		RequiredSkills:  []string{"Go", "PostgreSQL"},
		PreferredSkills: []string{"Kubernetes"},
		Education:       job.EducationRequirement{Required: true, DegreeLevel: "bachelor"},
	}
}

func TestScoreStrongCandidate(t *testing.T) {
	report := NewScorer(DefaultPolicy()).Score(strongResume(), demandingJob(), nil)

	// Skills: 2/2 required (70) + 0/1 preferred (0) = 70.
	assert.InDelta(t, 70, report.Skills.Score, 0.001)
	// Experience: base 50 + meets years 30 + exceeds 1.5x 10 + exact level 20,
	// clamped to 100.
	assert.InDelta(t, 100, report.Experience.Score, 0.001)
	// Education: base 50 + degree 40 + technical field 10.
	assert.InDelta(t, 100, report.Education.Score, 0.001)
	// Other: base 50 + projects 15 + certs 15 + summary 10 + contact 10.
	assert.InDelta(t, 100, report.Other.Score, 0.001)

	// 70*0.4 + 100*0.3 + 100*0.2 + 100*0.1 = 88.
	assert.Equal(t, 88, report.Overall)
	assert.Equal(t, CategoryStrong, report.Category)

	assert.Empty(t, report.Skills.Missing)
	assert.Contains(t, report.Recommendations, "Advance to a technical screen; no required skills are missing")
}

func TestScoreMissingSkills(t *testing.T) {
	r := strongResume()
	j := demandingJob()
	j.RequiredSkills = []string{"Go", "Rust", "Kafka", "PostgreSQL"}

	report := NewScorer(DefaultPolicy()).Score(r, j, nil)

	// 2/4 required = 35 points.
	assert.InDelta(t, 35, report.Skills.Score, 0.001)
	assert.ElementsMatch(t, []string{"Rust", "Kafka"}, report.Skills.Missing)
	assert.Contains(t, report.Gaps, "Missing required skill: Rust")
	require.NotEmpty(t, report.InterviewQuestions)
	assert.Contains(t, report.InterviewQuestions[0], "Rust")
}

func TestScoreNoSkillsListed(t *testing.T) {
	j := demandingJob()
	j.RequiredSkills = nil
	j.PreferredSkills = nil

	// Both lists empty: each awards its full share.
	report := NewScorer(DefaultPolicy()).Score(strongResume(), j, nil)
	assert.InDelta(t, 100, report.Skills.Score, 0.001)
}

func TestScoreFullRequiredNoPreferred(t *testing.T) {
	j := demandingJob()
	j.PreferredSkills = nil

	report := NewScorer(DefaultPolicy()).Score(strongResume(), j, nil)

	// 2/2 required matched and no preferred list: full marks.
	assert.InDelta(t, 100, report.Skills.Score, 0.001)
	assert.Equal(t, 100, report.Overall)
	assert.Equal(t, CategoryExcellent, report.Category)
}

func TestScoreWeightsAppliedLiterally(t *testing.T) {
	// Weights that sum to 2.0 must not be renormalized.
	w := &Weights{Skills: 1, Experience: 1, Education: 0, Other: 0}

	report := NewScorer(DefaultPolicy()).Score(strongResume(), demandingJob(), w)

	assert.InDelta(t, 70, report.Skills.Weighted, 0.001)
	assert.InDelta(t, 100, report.Experience.Weighted, 0.001)
	assert.Zero(t, report.Education.Weighted)
	assert.Equal(t, 170, report.Overall)
}

func TestScoreExperienceShortfall(t *testing.T) {
	r := strongResume()
	r.ExperienceYears = 2
	r.ExperienceLevel = seniority.Entry
	j := demandingJob()
	j.ExperienceYears = 8

	report := NewScorer(DefaultPolicy()).Score(r, j, nil)

	// Base 50 - (6/8)*30 = 27.5; level distance 2 adds nothing.
	assert.InDelta(t, 27.5, report.Experience.Score, 0.001)
	assert.Contains(t, report.Gaps, "Experience falls short of the 8 years the role asks for")
}

func TestScoreEducationNotRequired(t *testing.T) {
	r := strongResume()
	r.Education = nil
	j := demandingJob()
	j.Education = job.EducationRequirement{}

	report := NewScorer(DefaultPolicy()).Score(r, j, nil)
	assert.InDelta(t, 100, report.Education.Score, 0.001)
}

func TestScoreEducationMissingDegree(t *testing.T) {
	r := strongResume()
	r.Education = nil

	report := NewScorer(DefaultPolicy()).Score(r, demandingJob(), nil)
	assert.InDelta(t, 30, report.Education.Score, 0.001)
	assert.Contains(t, report.Gaps, "Education does not meet the stated degree requirement")
}

func TestSatisfiesDegree(t *testing.T) {
	masters := &resume.Parsed{Education: []extract.EducationEntry{{Degree: "Master of Science"}}}
	bachelors := &resume.Parsed{Education: []extract.EducationEntry{{Degree: "B.S. Computer Science"}}}

	assert.True(t, satisfiesDegree(masters, "bachelor"))
	assert.False(t, satisfiesDegree(bachelors, "master"))
	// Unrecognized requirement: any degree counts.
	assert.True(t, satisfiesDegree(bachelors, "diploma"))
}

func TestHasSkill(t *testing.T) {
	candidate := []string{"Go", "PostgreSQL", "Node.js"}

	assert.True(t, hasSkill(candidate, "go"))
	assert.True(t, hasSkill(candidate, "Postgres"))
	assert.True(t, hasSkill(candidate, "Node"))
	assert.False(t, hasSkill(candidate, "Rust"))
}

func TestCategoryThresholds(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, CategoryExcellent, p.category(95))
	assert.Equal(t, CategoryExcellent, p.category(90))
	assert.Equal(t, CategoryStrong, p.category(85))
	assert.Equal(t, CategoryGood, p.category(72))
	assert.Equal(t, CategoryModerate, p.category(60))
	assert.Equal(t, CategoryWeak, p.category(59.4))
}

func TestScoreBounds(t *testing.T) {
	empty := &resume.Parsed{}
	report := NewScorer(DefaultPolicy()).Score(empty, demandingJob(), nil)

	for _, f := range []Factor{report.Skills, report.Experience, report.Education, report.Other} {
		assert.GreaterOrEqual(t, f.Score, 0.0)
		assert.LessOrEqual(t, f.Score, 100.0)
	}
	assert.GreaterOrEqual(t, report.Overall, 0)
	assert.LessOrEqual(t, report.Overall, 100)
}
