package extract

import (
	"regexp"
	"strings"
	"time"
)

// ExperienceEntry is one position parsed out of an experience section.
type ExperienceEntry struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
	Location         string   `json:"location,omitempty"`
}

// TechScanner reports the known technology terms mentioned in a text span.
// It decouples the extractor from the taxonomy matcher.
type TechScanner func(text string) []string

var (
	monthNameRe = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b`)
	yearRangeRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	roleWordRe  = regexp.MustCompile(`(?i)\b(senior|junior|lead|principal|staff|engineer|developer|manager|analyst|architect|consultant|designer|director|intern)\b`)
	expVocabRe  = regexp.MustCompile(`(?i)\b(worked|responsible|developed|managed|led|built|designed|implemented|maintained)\b`)

	companyAfterAtRe  = regexp.MustCompile(`\b(?:at|At|@)\s+([A-Z][A-Za-z0-9&.,' -]{1,40}?)(?:\s*[|,(–-]|\s+\d|$)`)
	companySuffixRe   = regexp.MustCompile(`\b((?:[A-Z][A-Za-z0-9&.']*\s+){0,4}(?:Inc|LLC|Corp|Ltd|Company)\b\.?)`)
	bulletGlyphs      = []string{"•", "◦", "▪", "‣", "●", "- ", "* "}
	entryLocationRe   = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:[ -][A-Z][a-zA-Z]+)*,\s*[A-Z]{2})\b`)
	titleSeparatorsRe = regexp.MustCompile(`\s+(?:at|@)\s+|\s*[|]\s*`)
)

// ExtractExperience splits an experience section into logical blocks and
// parses each block that plausibly describes a position. Blocks that do not
// classify as experience are dropped silently. Open-ended ranges resolve
// against now.
func ExtractExperience(section string, scan TechScanner, now time.Time) []ExperienceEntry {
	entries := make([]ExperienceEntry, 0, 4)
	for _, block := range SplitBlocks(section) {
		if !looksLikeExperience(block) {
			continue
		}
		entries = append(entries, parseExperienceBlock(block, scan, now))
	}
	return entries
}

// SplitBlocks splits section text into logical blocks. A new block starts at
// a line with no leading indentation, except that bullet lines always attach
// to the block above them.
func SplitBlocks(section string) []string {
	lines := strings.Split(section, "\n")
	blocks := make([]string, 0, 8)
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		block := strings.TrimSpace(strings.Join(current, "\n"))
		if block != "" {
			blocks = append(blocks, block)
		}
		current = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		startsNew := len(line) > 0 && line[0] != ' ' && line[0] != '\t' && !isBulletLine(trimmed)
		if startsNew && startsEntry(trimmed) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// startsEntry reports whether an unindented line opens a new position. Lines
// that carry a date range or read like a role title do; continuation prose
// does not.
func startsEntry(line string) bool {
	if dateRangeRe.MatchString(line) {
		return true
	}
	return roleWordRe.MatchString(line) && len(strings.Fields(line)) <= 10
}

func looksLikeExperience(block string) bool {
	return yearRangeRe.MatchString(block) ||
		monthNameRe.MatchString(block) ||
		roleWordRe.MatchString(block) ||
		expVocabRe.MatchString(block)
}

func parseExperienceBlock(block string, scan TechScanner, now time.Time) ExperienceEntry {
	lines := strings.Split(block, "\n")
	entry := ExperienceEntry{}

	first := strings.TrimSpace(lines[0])
	entry.Title = titleFromHeader(first)
	entry.Company = companyFromBlock(block)

	if r, ok := MatchDateRange(block); ok {
		entry.StartDate = r.Start
		entry.EndDate = r.End
		entry.Duration = FormatDuration(Months(r, now))
	}

	if m := entryLocationRe.FindStringSubmatch(block); len(m) > 1 {
		entry.Location = m[1]
	}

	entry.Responsibilities = ExtractBullets(block)
	if scan != nil {
		entry.Technologies = scan(block)
	}

	return entry
}

// titleFromHeader strips company and date decorations from the first line of
// a block, leaving the role title.
func titleFromHeader(line string) string {
	line = dateRangeRe.ReplaceAllString(line, "")
	if parts := titleSeparatorsRe.Split(line, 2); len(parts) > 0 {
		line = parts[0]
	}
	return strings.Trim(strings.TrimSpace(line), "-–|,")
}

var companyRules = []Rule{
	Capture(companyAfterAtRe),
	Capture(companySuffixRe),
}

func companyFromBlock(block string) string {
	for _, rule := range companyRules {
		if v, ok := rule(block); ok {
			return strings.TrimRight(strings.TrimSpace(v), ",.")
		}
	}
	return ""
}

// ExtractBullets collects responsibility lines marked with a known bullet
// glyph, in document order.
func ExtractBullets(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, glyph := range bulletGlyphs {
			if strings.HasPrefix(trimmed, glyph) {
				item := strings.TrimSpace(strings.TrimPrefix(trimmed, glyph))
				if item != "" {
					bullets = append(bullets, item)
				}
				break
			}
		}
	}
	return bullets
}

func isBulletLine(trimmed string) bool {
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(trimmed, glyph) {
			return true
		}
	}
	return false
}
