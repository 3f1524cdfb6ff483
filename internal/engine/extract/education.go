package extract

import (
	"regexp"
	"strings"
)

// EducationEntry is one degree parsed out of an education section.
type EducationEntry struct {
	Degree          string   `json:"degree,omitempty"`
	Institution     string   `json:"institution,omitempty"`
	GraduationDate  string   `json:"graduation_date,omitempty"`
	GPA             string   `json:"gpa,omitempty"`
	RelevantCourses []string `json:"relevant_courses,omitempty"`
}

var (
	degreeRe       = regexp.MustCompile(`(?i)\b(Ph\.?D\.?|Doctorate|Master(?:'?s)?(?: of [A-Za-z ]+)?|Bachelor(?:'?s)?(?: of [A-Za-z ]+)?|Associate(?:'?s)?(?: of [A-Za-z ]+)?|M\.?B\.?A\.?|M\.?S\.?c?\.?|B\.?S\.?c?\.?|B\.?A\.?|M\.?A\.?)\b`)
	institutionRe  = regexp.MustCompile(`([A-Z][A-Za-z.&' -]{2,60}(?:University|College|Institute|School)(?: of [A-Z][A-Za-z ]+)?|(?:University|College|Institute|School) of [A-Z][A-Za-z ]+)`)
	gpaRe          = regexp.MustCompile(`(?i)\bGPA[:\s]*([0-4](?:\.\d{1,2})?)(?:\s*/\s*[0-9.]+)?`)
	gradYearRe     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	courseworkRe   = regexp.MustCompile(`(?i)(?:relevant\s+)?course(?:s|work)[:\s]+([^\n]+)`)
	courseSplitRe  = regexp.MustCompile(`[,;|]`)
)

// ExtractEducation splits an education section into paragraph blocks and
// parses the ones that mention a degree or an institution.
func ExtractEducation(section string) []EducationEntry {
	entries := make([]EducationEntry, 0, 2)
	for _, block := range blankLineBlocks(section) {
		if !degreeRe.MatchString(block) && !institutionRe.MatchString(block) {
			continue
		}
		entries = append(entries, parseEducationBlock(block))
	}
	return entries
}

func parseEducationBlock(block string) EducationEntry {
	entry := EducationEntry{}

	if m := degreeRe.FindString(block); m != "" {
		entry.Degree = strings.TrimSpace(m)
	}
	if m := institutionRe.FindStringSubmatch(block); len(m) > 1 {
		entry.Institution = strings.TrimSpace(m[1])
	}
	if m := gpaRe.FindStringSubmatch(block); len(m) > 1 {
		entry.GPA = m[1]
	}

	// Prefer the end of a range ("2016 - 2020") as the graduation date;
	// otherwise take the last year mentioned.
	if r, ok := MatchDateRange(block); ok && !r.Present {
		entry.GraduationDate = r.End
	} else if years := gradYearRe.FindAllString(block, -1); len(years) > 0 {
		entry.GraduationDate = years[len(years)-1]
	}

	if m := courseworkRe.FindStringSubmatch(block); len(m) > 1 {
		for _, course := range courseSplitRe.Split(m[1], -1) {
			if course = strings.TrimSpace(course); course != "" {
				entry.RelevantCourses = append(entry.RelevantCourses, course)
			}
		}
	}

	return entry
}

// DegreeLevel normalizes a degree string to one of phd, master, bachelor,
// associate or an empty string.
func DegreeLevel(degree string) string {
	degree = strings.ToLower(degree)
	switch {
	case strings.Contains(degree, "phd"), strings.Contains(degree, "ph.d"), strings.Contains(degree, "doctor"):
		return "phd"
	case strings.Contains(degree, "master"), strings.Contains(degree, "mba"), strings.Contains(degree, "m.s"), strings.Contains(degree, "m.a"), degree == "ms", degree == "ma":
		return "master"
	case strings.Contains(degree, "bachelor"), strings.Contains(degree, "b.s"), strings.Contains(degree, "b.a"), degree == "bs", degree == "ba":
		return "bachelor"
	case strings.Contains(degree, "associate"):
		return "associate"
	default:
		return ""
	}
}
