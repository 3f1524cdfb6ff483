package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRange is a matched employment or education interval. End is the
// literal end token; Present reports whether the range is open-ended.
type DateRange struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Present bool   `json:"present"`
}

const dateToken = `(?:\b[A-Za-z]{3,9}\.?\s+\d{4}|\b\d{1,2}/\d{4}|\b\d{4})`

var (
	dateRangeRe = regexp.MustCompile(`(?i)(` + dateToken + `)\s*(?:-|–|—|to)\s*(` + dateToken + `|present|current)`)
	monthYearRe = regexp.MustCompile(`(?i)^([A-Za-z]{3,9})\.?\s+(\d{4})$`)
	slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	yearOnlyRe  = regexp.MustCompile(`^\d{4}$`)
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// MatchDateRange finds the first "start - end" range in the text. Accepted
// tokens are "Mon YYYY", "M/YYYY" and "YYYY"; the end token may additionally
// be "present" or "current" in any casing.
func MatchDateRange(text string) (DateRange, bool) {
	m := dateRangeRe.FindStringSubmatch(text)
	if len(m) < 3 {
		return DateRange{}, false
	}
	r := DateRange{
		Start: strings.TrimSpace(m[1]),
		End:   strings.TrimSpace(m[2]),
	}
	lowered := strings.ToLower(r.End)
	if lowered == "present" || lowered == "current" {
		r.Present = true
		r.End = "present"
	}
	// Start must parse; otherwise the match was a false positive such as a
	// score range.
	if _, ok := ParseDateToken(r.Start, time.Time{}); !ok {
		return DateRange{}, false
	}
	return r, true
}

// ParseDateToken converts a single date token to a point in time anchored at
// the first day of the month. "present" and "current" resolve to now; a bare
// year resolves to January.
func ParseDateToken(token string, now time.Time) (time.Time, bool) {
	token = strings.TrimSpace(token)
	lowered := strings.ToLower(token)
	if lowered == "present" || lowered == "current" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), true
	}
	if m := monthYearRe.FindStringSubmatch(token); len(m) == 3 {
		month, ok := monthIndex[strings.ToLower(m[1])[:3]]
		if !ok {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
	}
	if m := slashDateRe.FindStringSubmatch(token); len(m) == 3 {
		month, _ := strconv.Atoi(m[1])
		if month < 1 || month > 12 {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
	}
	if yearOnlyRe.MatchString(token) {
		year, _ := strconv.Atoi(token)
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// Months returns the whole-month span of the range. An open-ended range uses
// now as its end instant. Unparseable ranges yield zero.
func Months(r DateRange, now time.Time) int {
	start, ok := ParseDateToken(r.Start, now)
	if !ok {
		return 0
	}
	end, ok := ParseDateToken(r.End, now)
	if !ok {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// FormatDuration renders a whole-month count as "N years M months", dropping
// whichever component is zero.
func FormatDuration(months int) string {
	years := months / 12
	rem := months % 12
	switch {
	case months <= 0:
		return "less than a month"
	case years == 0:
		return plural(rem, "month")
	case rem == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " " + plural(rem, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
