// Package job mirrors the resume pipeline for job postings: title, skill
// requirements, experience and education demands, compensation, location and
// remote policy.
package job

import (
	"regexp"
	"strings"

	"github.com/hiapplyco/docintel/internal/engine/extract"
	"github.com/hiapplyco/docintel/internal/engine/seniority"
	"github.com/hiapplyco/docintel/internal/engine/taxonomy"
)

// SalaryInfo reports whether and how a posting discloses compensation.
type SalaryInfo struct {
	Mentioned bool   `json:"mentioned"`
	Range     string `json:"range,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// EducationRequirement is the posting's stated degree demand, if any.
type EducationRequirement struct {
	Required    bool   `json:"required"`
	DegreeLevel string `json:"degree_level,omitempty"`
}

// CompanyInfo carries company attributes mentioned in the posting.
type CompanyInfo struct {
	Name     string `json:"name,omitempty"`
	Industry string `json:"industry,omitempty"`
}

// Remote policy labels, in keyword precedence order.
const (
	RemoteFully   = "Fully remote"
	RemoteHybrid  = "Hybrid"
	RemoteOptions = "Remote options available"
	RemoteOnSite  = "On-site"
)

// Parsed is the structured result of analyzing one job posting.
type Parsed struct {
	Title            string               `json:"title"`
	Level            seniority.Level      `json:"experience_level"`
	ExperienceYears  float64              `json:"experience_years_required"`
	RequiredSkills   []string             `json:"required_skills,omitempty"`
	PreferredSkills  []string             `json:"preferred_skills,omitempty"`
	Education        EducationRequirement `json:"education"`
	Salary           SalaryInfo           `json:"salary"`
	Location         string               `json:"location,omitempty"`
	RemotePolicy     string               `json:"remote_policy"`
	Company          CompanyInfo          `json:"company"`
	Responsibilities []string             `json:"responsibilities,omitempty"`
	Recommendations  []string             `json:"recommendations,omitempty"`
}

// Analyzer parses job posting text against an injected taxonomy.
type Analyzer struct {
	tax *taxonomy.Matcher
}

// NewAnalyzer builds a job analyzer over the provided taxonomy config.
func NewAnalyzer(cfg taxonomy.Config) *Analyzer {
	return &Analyzer{tax: taxonomy.NewMatcher(cfg)}
}

var (
	titleLineRe = regexp.MustCompile(`(?im)^(?:job title|position|role)\s*[:\-]\s*(.+)$`)
	hiringForRe = regexp.MustCompile(`(?i)(?:hiring|looking for|seeking)\s+an?\s+([A-Z][A-Za-z /+-]{3,60}?)(?:\s+(?:to|who|with|in)\b|[.,\n])`)

	canonicalTitles = []string{
		"Software Engineer", "Data Scientist", "Product Manager",
		"DevOps Engineer", "Data Engineer", "Machine Learning Engineer",
		"Frontend Developer", "Backend Developer", "Full Stack Developer",
		"Engineering Manager", "QA Engineer", "Site Reliability Engineer",
		"UX Designer", "Security Engineer",
	}

	preferredSpanRe = regexp.MustCompile(`(?is)(?:preferred|nice[ -]to[ -]have|a plus|bonus)[^\n]*\n?(.*?)(?:\n\s*\n|$)`)

	salaryRangeRe = regexp.MustCompile(`(?i)([$€£]\s?\d[\d,.]*\s?[kK]?)(?:\s*(?:-|–|—|to)\s*([$€£]?\s?\d[\d,.]*\s?[kK]?))?(?:\s*(?:per|/)\s*(?:year|yr|annum|hour|hr))?`)

	companyNameRe = regexp.MustCompile(`(?m)(?:^|\n)(?:About|Join)\s+([A-Z][A-Za-z0-9&.' -]{1,40}?)(?:[:.,\n]|$)`)

	locationLineRe = regexp.MustCompile(`(?im)^location\s*[:\-]\s*(.+)$`)

	fullyRemoteRe = regexp.MustCompile(`(?i)\b(fully remote|100%\s*remote|remote[ -]first)\b`)
	hybridRe      = regexp.MustCompile(`(?i)\bhybrid\b`)
	remoteRe      = regexp.MustCompile(`(?i)\bremote\b`)

	degreeRequiredRe = regexp.MustCompile(`(?i)\b(bachelor|master|phd|ph\.d|doctorate|associate)(?:'?s)?\b[^\n]*\b(degree|required|preferred|or equivalent)\b|\bdegree\s+in\b`)
)

// Analyze parses a job posting. Like resume parsing it is total: absent
// fields come back empty, never as an error.
func (a *Analyzer) Analyze(text string) *Parsed {
	p := &Parsed{}

	p.Title = a.extractTitle(text)
	p.Level = seniority.FromJobText(text)
	if years, ok := seniority.YearsFigure(text); ok {
		p.ExperienceYears = years
	}

	p.PreferredSkills = a.preferredSkills(text)
	p.RequiredSkills = subtract(a.tax.Scan(text), p.PreferredSkills)

	p.Education = extractEducationRequirement(text)
	p.Salary = extractSalary(text)
	p.Location = extractLocation(text)
	p.RemotePolicy = classifyRemotePolicy(text)
	p.Company = extractCompany(text)
	p.Responsibilities = extract.ExtractBullets(text)

	p.Recommendations = recommend(p)
	return p
}

// extractTitle runs the title rules in order, then falls back to scanning
// for a canonical title by substring.
func (a *Analyzer) extractTitle(text string) string {
	rules := extract.First(
		extract.Capture(titleLineRe),
		extract.Capture(hiringForRe),
	)
	if v, ok := rules(text); ok {
		return strings.TrimSpace(v)
	}
	lowered := strings.ToLower(text)
	for _, title := range canonicalTitles {
		if strings.Contains(lowered, strings.ToLower(title)) {
			return title
		}
	}
	return ""
}

// preferredSkills scans only the preferred/nice-to-have span of the posting.
func (a *Analyzer) preferredSkills(text string) []string {
	m := preferredSpanRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return nil
	}
	return a.tax.Scan(m[1])
}

func subtract(all, remove []string) []string {
	if len(remove) == 0 {
		return all
	}
	drop := make(map[string]bool, len(remove))
	for _, s := range remove {
		drop[strings.ToLower(s)] = true
	}
	kept := all[:0:0]
	for _, s := range all {
		if !drop[strings.ToLower(s)] {
			kept = append(kept, s)
		}
	}
	return kept
}

func extractEducationRequirement(text string) EducationRequirement {
	if !degreeRequiredRe.MatchString(text) {
		return EducationRequirement{}
	}
	return EducationRequirement{
		Required:    true,
		DegreeLevel: extract.DegreeLevel(text),
	}
}

func extractSalary(text string) SalaryInfo {
	m := salaryRangeRe.FindStringSubmatch(text)
	if len(m) == 0 {
		return SalaryInfo{}
	}
	info := SalaryInfo{Mentioned: true, Range: strings.TrimSpace(m[0])}
	switch {
	case strings.Contains(m[0], "$"):
		info.Currency = "USD"
	case strings.Contains(m[0], "€"):
		info.Currency = "EUR"
	case strings.Contains(m[0], "£"):
		info.Currency = "GBP"
	}
	return info
}

func extractLocation(text string) string {
	if m := locationLineRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// classifyRemotePolicy applies keyword precedence: fully remote, hybrid,
// remote options, on-site.
func classifyRemotePolicy(text string) string {
	switch {
	case fullyRemoteRe.MatchString(text):
		return RemoteFully
	case hybridRe.MatchString(text):
		return RemoteHybrid
	case remoteRe.MatchString(text):
		return RemoteOptions
	default:
		return RemoteOnSite
	}
}

func extractCompany(text string) CompanyInfo {
	info := CompanyInfo{}
	if m := companyNameRe.FindStringSubmatch(text); len(m) > 1 {
		info.Name = strings.TrimSpace(m[1])
	}
	return info
}

// recommend flags posting-quality issues a recruiter should fix before
// publishing.
func recommend(p *Parsed) []string {
	var recs []string
	if !p.Salary.Mentioned {
		recs = append(recs, "Disclose a salary range; postings with salary information attract more applicants")
	}
	if p.Title == "" {
		recs = append(recs, "State the job title explicitly near the top of the posting")
	}
	if len(p.RequiredSkills) == 0 {
		recs = append(recs, "List the concrete skills the role requires")
	}
	if len(p.Responsibilities) == 0 {
		recs = append(recs, "Describe day-to-day responsibilities as bullet points")
	}
	return recs
}
