// Package extract pulls typed fields out of labeled document sections using
// ordered pattern rules. Extraction is total: a field that cannot be found is
// reported as an empty value, never as an error.
package extract

import "regexp"

// Rule is a single extraction attempt. It returns the extracted value and
// whether the rule matched.
type Rule func(text string) (string, bool)

// Capture builds a rule returning the first capture group of the pattern's
// first match.
func Capture(re *regexp.Regexp) Rule {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 || m[1] == "" {
			return "", false
		}
		return m[1], true
	}
}

// Literal builds a rule returning the whole first match of the pattern.
func Literal(re *regexp.Regexp) Rule {
	return func(text string) (string, bool) {
		m := re.FindString(text)
		if m == "" {
			return "", false
		}
		return m, true
	}
}

// First composes rules into a first-match-wins pipeline.
func First(rules ...Rule) Rule {
	return func(text string) (string, bool) {
		for _, rule := range rules {
			if v, ok := rule(text); ok {
				return v, true
			}
		}
		return "", false
	}
}
