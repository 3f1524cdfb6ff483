package document

import (
	"regexp"
	"strings"
)

// maxHeadingLen keeps prose lines that merely mention a cue word (for example
// "10 years of experience building...") from being treated as headings.
const maxHeadingLen = 48

var headingCues = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{KindContact, regexp.MustCompile(`(?i)^\s*contact`)},
	{KindSummary, regexp.MustCompile(`(?i)^\s*(professional\s+)?(summary|profile|objective|about)`)},
	{KindExperience, regexp.MustCompile(`(?i)^\s*((work|professional)\s+)?(experience|employment|work\s+history)`)},
	{KindEducation, regexp.MustCompile(`(?i)^\s*(education|academic|degrees?)`)},
	{KindSkills, regexp.MustCompile(`(?i)^\s*((technical|core)\s+)?(skills|technologies|competencies)`)},
	{KindCertifications, regexp.MustCompile(`(?i)^\s*(certifications?|licenses?)`)},
	{KindProjects, regexp.MustCompile(`(?i)^\s*((personal|side)\s+)?(projects|portfolio)`)},
}

type headingMark struct {
	kind Kind
	line int
}

// Segment splits raw document text into labeled sections. For each kind the
// first matching heading wins, scanned top to bottom; a section's text runs
// from the line after its heading to the next recognized heading or the end
// of the document. Text before the first heading is labeled as contact
// information. A kind with no cue yields no section.
//
// Heading conflicts are resolved purely by scan order. A cue appearing inside
// a body line short enough to look like a heading will mis-split the
// document; the segmenter does not attempt overlap detection.
func Segment(text string, toggles Toggles) []Section {
	lines := strings.Split(text, "\n")

	marks := make([]headingMark, 0, len(headingCues))
	seen := make(map[Kind]bool, len(headingCues))

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) > maxHeadingLen {
			continue
		}
		kind, ok := matchHeading(trimmed)
		if !ok {
			continue
		}
		marks = append(marks, headingMark{kind: kind, line: i})
		seen[kind] = true
	}

	sections := make([]Section, 0, len(marks)+1)

	// The preamble above the first heading typically holds the candidate's
	// name and contact lines.
	preambleEnd := len(lines)
	if len(marks) > 0 {
		preambleEnd = marks[0].line
	}
	if preamble := joinLines(lines[:preambleEnd]); preamble != "" && toggles.enabled(KindContact) {
		sections = append(sections, Section{Kind: KindContact, Text: preamble})
	}

	emitted := make(map[Kind]bool, len(marks))
	for i, mark := range marks {
		if emitted[mark.kind] {
			// First match wins per kind; a repeated heading still
			// terminates the previous span above.
			continue
		}
		emitted[mark.kind] = true

		if !toggles.enabled(mark.kind) {
			continue
		}

		end := len(lines)
		if i+1 < len(marks) {
			end = marks[i+1].line
		}
		body := joinLines(lines[mark.line+1 : end])
		sections = append(sections, Section{Kind: mark.kind, Text: body})
	}

	return sections
}

// FindSection returns the text of the first section with the given kind, or
// an empty string when none exists.
func FindSection(sections []Section, kind Kind) string {
	for _, s := range sections {
		if s.Kind == kind {
			return s.Text
		}
	}
	return ""
}

func matchHeading(line string) (Kind, bool) {
	for _, cue := range headingCues {
		if cue.re.MatchString(line) {
			return cue.kind, true
		}
	}
	return "", false
}

func joinLines(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
