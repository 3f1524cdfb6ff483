package boolquery

import (
	"regexp"
	"strings"
)

// Keyword tables for inferring structured query input from free-text
// sourcing instructions. Deliberately small: this path only runs when the AI
// generator is unavailable, so predictable beats clever.
var (
	knownTitles = []string{
		"software engineer", "data scientist", "product manager",
		"devops engineer", "data engineer", "machine learning engineer",
		"frontend developer", "backend developer", "full stack developer",
		"engineering manager", "designer", "recruiter", "analyst",
	}

	knownSkills = []string{
		"python", "java", "javascript", "typescript", "go", "golang", "rust",
		"ruby", "react", "angular", "vue", "node", "django", "aws", "azure",
		"gcp", "docker", "kubernetes", "terraform", "sql", "postgresql",
		"mongodb", "kafka", "spark", "machine learning",
	}

	excludeHintRe = regexp.MustCompile(`(?i)\b(?:not|without|excluding|exclude)\s+([a-z0-9 .+#-]{2,30}?)(?:[.,\n]|$)`)
	yearsHintRe   = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*years?\b`)
	wordRe        = regexp.MustCompile(`[A-Za-z0-9+#.]+`)
)

// FromInstructions infers a structured query input from free-text sourcing
// instructions using fixed keyword tables. When nothing recognizable is
// found it degrades to the first three words AND-joined.
func FromInstructions(text string) Input {
	in := Input{Platform: PlatformGoogle}
	lowered := strings.ToLower(text)

	for _, title := range knownTitles {
		if strings.Contains(lowered, title) {
			in.Titles = append(in.Titles, titleCase(title))
		}
	}
	for _, skill := range knownSkills {
		if containsWord(lowered, skill) {
			in.Required = append(in.Required, titleCase(skill))
		}
	}
	if m := excludeHintRe.FindStringSubmatch(text); len(m) > 1 {
		in.Exclude = append(in.Exclude, strings.TrimSpace(m[1]))
	}
	if m := yearsHintRe.FindStringSubmatch(text); len(m) > 1 {
		in.ExperienceYears = atoiSafe(m[1])
	}

	if len(in.Required) == 0 && len(in.Titles) == 0 {
		words := wordRe.FindAllString(text, 3)
		in.Required = append(in.Required, words...)
	}
	return in
}

func containsWord(lowered, term string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	return re.MatchString(lowered)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
