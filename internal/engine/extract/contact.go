package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Contact holds the identification fields found in a document. Fields that
// were not found are empty strings.
type Contact struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin_url,omitempty"`
	GitHub   string `json:"github_url,omitempty"`
}

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?(linkedin\.com/in/[A-Za-z0-9_-]+)`)
	githubRe   = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?(github\.com/[A-Za-z0-9_-]+)`)
	locationRe = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:[ -][A-Z][a-zA-Z]+)*,\s*(?:[A-Z]{2}|[A-Z][a-zA-Z]+))\b`)
	nameWordRe = regexp.MustCompile(`^[A-Za-z'.-]+$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

var contactRules = map[string]Rule{
	"email":    Literal(emailRe),
	"phone":    Literal(phoneRe),
	"linkedin": Capture(linkedinRe),
	"github":   Capture(githubRe),
	"location": Capture(locationRe),
}

// ExtractContact finds contact fields anywhere in the provided text. The name
// heuristic only inspects the first few lines, where resumes conventionally
// place it.
func ExtractContact(text string) Contact {
	c := Contact{}
	if v, ok := contactRules["email"](text); ok {
		c.Email = v
	}
	if v, ok := contactRules["phone"](text); ok {
		c.Phone = normalizePhone(v)
	}
	if v, ok := contactRules["linkedin"](text); ok {
		c.LinkedIn = strings.ToLower(v)
	}
	if v, ok := contactRules["github"](text); ok {
		c.GitHub = strings.ToLower(v)
	}
	if v, ok := contactRules["location"](text); ok {
		c.Location = v
	}
	c.Name = extractName(text)
	return c
}

// extractName returns the first line within the top five lines that looks
// like a person's name: two to four alphabetic words without digits or
// contact markers.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 4 {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "@") || phoneRe.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		plausible := true
		for _, w := range words {
			if len(w) < 2 || !nameWordRe.MatchString(w) {
				plausible = false
				break
			}
		}
		if plausible {
			return line
		}
	}
	return ""
}

// normalizePhone renders 10 and 11 digit North American numbers in a
// canonical format and leaves anything else untouched.
func normalizePhone(phone string) string {
	digits := nonDigitRe.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11])
	default:
		return phone
	}
}
