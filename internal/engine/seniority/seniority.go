// Package seniority defines the ordered experience-level scale shared by the
// resume analyzer, job analyzer and match scorer.
package seniority

import (
	"regexp"
	"strconv"
)

// Level is a rung on the ordered scale entry < mid < senior < executive.
type Level string

const (
	Entry     Level = "entry"
	Mid       Level = "mid"
	Senior    Level = "senior"
	Executive Level = "executive"
)

var order = map[Level]int{Entry: 0, Mid: 1, Senior: 2, Executive: 3}

// Index returns the level's position on the scale; unknown levels map to Mid.
func (l Level) Index() int {
	if idx, ok := order[l]; ok {
		return idx
	}
	return order[Mid]
}

// Distance is the absolute index distance between two levels.
func Distance(a, b Level) int {
	d := a.Index() - b.Index()
	if d < 0 {
		return -d
	}
	return d
}

// FromYears maps total experience years to a level: <=2 entry, <=5 mid,
// <=10 senior, above that executive.
func FromYears(years float64) Level {
	switch {
	case years <= 2:
		return Entry
	case years <= 5:
		return Mid
	case years <= 10:
		return Senior
	default:
		return Executive
	}
}

var (
	seniorKeywordRe = regexp.MustCompile(`(?i)\b(senior|lead|principal|staff)\b`)
	entryKeywordRe  = regexp.MustCompile(`(?i)\b(junior|entry[ -]level|graduate|intern)\b`)
	yearsFigureRe   = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*years?\b`)
)

// FromJobText infers the level a job posting targets. Explicit keywords win;
// otherwise an "N years" figure is mapped through FromYears; with neither
// cue, mid is assumed.
func FromJobText(text string) Level {
	switch {
	case seniorKeywordRe.MatchString(text):
		return Senior
	case entryKeywordRe.MatchString(text):
		return Entry
	}
	if years, ok := YearsFigure(text); ok {
		return FromYears(years)
	}
	return Mid
}

// YearsFigure extracts the first "N years" figure from the text.
func YearsFigure(text string) (float64, bool) {
	m := yearsFigureRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return float64(n), true
}
