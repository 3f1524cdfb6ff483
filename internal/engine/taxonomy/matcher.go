package taxonomy

import (
	"regexp"
	"sort"
	"strings"
)

// CategoryGroup is the set of matched skills belonging to one category.
type CategoryGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// SkillSet partitions matched skills into technical category groups and a
// flat soft-skill list.
type SkillSet struct {
	Technical []CategoryGroup `json:"technical"`
	Soft      []string        `json:"soft,omitempty"`
}

// Flat returns every technical skill across all categories.
func (s SkillSet) Flat() []string {
	var all []string
	for _, group := range s.Technical {
		all = append(all, group.Skills...)
	}
	return all
}

type term struct {
	canonical string
	category  string
	re        *regexp.Regexp
}

// Matcher matches text against one taxonomy Config. It is safe for
// concurrent use once built.
type Matcher struct {
	terms []term
	soft  []term
}

// NewMatcher compiles the vocabulary of the provided config.
func NewMatcher(cfg Config) *Matcher {
	m := &Matcher{}
	for _, cat := range cfg.Categories {
		for _, skill := range cat.Skills {
			m.terms = append(m.terms, term{canonical: skill, category: cat.Name, re: termPattern(skill)})
		}
	}
	for _, skill := range cfg.Soft {
		m.soft = append(m.soft, term{canonical: skill, re: termPattern(skill)})
	}
	return m
}

// termPattern builds the match pattern for one vocabulary term. Terms made of
// word characters are bounded so that "Go" does not match inside "Google";
// terms with punctuation such as "C++" or "Node.js" fall back to plain
// substring semantics.
func termPattern(skill string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(skill)
	if regexp.MustCompile(`^[0-9A-Za-z ]+$`).MatchString(skill) {
		return regexp.MustCompile(`(?i)\b` + quoted + `\b`)
	}
	return regexp.MustCompile(`(?i)` + quoted)
}

// Scan returns the canonical names of every vocabulary term mentioned in the
// text, deduplicated, in taxonomy order.
func (m *Matcher) Scan(text string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, t := range m.terms {
		if seen[t.canonical] || !t.re.MatchString(text) {
			continue
		}
		seen[t.canonical] = true
		found = append(found, t.canonical)
	}
	return found
}

// Match builds the full SkillSet for a document: a vocabulary scan over the
// complete text, a second pass over the skills section that also keeps
// capitalized tokens missing from the vocabulary, and a soft-skill scan.
func (m *Matcher) Match(fullText, skillsSection string) SkillSet {
	byCategory := make(map[string][]string)
	seen := make(map[string]bool)

	for _, t := range m.terms {
		if t.re.MatchString(fullText) || (skillsSection != "" && t.re.MatchString(skillsSection)) {
			if !seen[t.canonical] {
				seen[t.canonical] = true
				byCategory[t.category] = append(byCategory[t.category], t.canonical)
			}
		}
	}

	for _, tok := range capitalizedTokens(skillsSection) {
		if !seen[tok] && !m.inVocabulary(tok) {
			seen[tok] = true
			byCategory[OtherCategory] = append(byCategory[OtherCategory], tok)
		}
	}

	set := SkillSet{}
	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	// Keep "Other" last regardless of alphabetical order.
	for _, name := range names {
		if name == OtherCategory {
			continue
		}
		set.Technical = append(set.Technical, CategoryGroup{Category: name, Skills: byCategory[name]})
	}
	if other, ok := byCategory[OtherCategory]; ok {
		set.Technical = append(set.Technical, CategoryGroup{Category: OtherCategory, Skills: other})
	}

	for _, t := range m.soft {
		if t.re.MatchString(fullText) {
			set.Soft = append(set.Soft, t.canonical)
		}
	}

	return set
}

func (m *Matcher) inVocabulary(tok string) bool {
	for _, t := range m.terms {
		if strings.EqualFold(t.canonical, tok) {
			return true
		}
	}
	return false
}

var tokenSplitRe = regexp.MustCompile(`[,;|\n•◦▪‣●]+`)

// capitalizedTokens pulls candidate skill names out of a skills section:
// delimiter-separated tokens that start with an uppercase letter and stay
// short enough to be a term rather than prose.
func capitalizedTokens(section string) []string {
	if section == "" {
		return nil
	}
	var tokens []string
	seen := make(map[string]bool)
	for _, raw := range tokenSplitRe.Split(section, -1) {
		tok := strings.Trim(strings.TrimSpace(raw), "-* ")
		if tok == "" || len(tok) < 2 || len(tok) > 30 {
			continue
		}
		if tok[0] < 'A' || tok[0] > 'Z' {
			continue
		}
		if strings.Count(tok, " ") > 2 {
			continue
		}
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
