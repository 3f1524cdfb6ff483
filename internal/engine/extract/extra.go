package extract

import (
	"regexp"
	"strings"
)

// CertificationEntry is one certification parsed from its section.
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// ProjectEntry is one project parsed from a projects section.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

var (
	certIssuerRe = regexp.MustCompile(`(?i)\b(AWS|Amazon|Google|Microsoft|Oracle|Cisco|CompTIA|Kubernetes|HashiCorp|Salesforce|PMI|Scrum\.org|Linux Foundation)\b`)
	certDateRe   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	projectURLRe = regexp.MustCompile(`(?i)\bhttps?://\S+`)
)

// ExtractCertifications treats every non-empty line of a certifications
// section as one certification, pulling out a known issuer and a year when
// present.
func ExtractCertifications(section string) []CertificationEntry {
	var entries []CertificationEntry
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "•◦▪‣●-* "))
		if line == "" {
			continue
		}
		entry := CertificationEntry{Name: line}
		if m := certIssuerRe.FindString(line); m != "" {
			entry.Issuer = m
		}
		if m := certDateRe.FindString(line); m != "" {
			entry.Date = m
		}
		entries = append(entries, entry)
	}
	return entries
}

// ExtractProjects parses a projects section block by block: the first line
// names the project, bullets and remaining lines describe it.
func ExtractProjects(section string, scan TechScanner) []ProjectEntry {
	var entries []ProjectEntry
	for _, block := range blankLineBlocks(section) {
		lines := strings.Split(block, "\n")
		name := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(lines[0]), "•◦▪‣●-* "))
		if name == "" {
			continue
		}
		entry := ProjectEntry{Name: name}
		if len(lines) > 1 {
			entry.Description = strings.TrimSpace(strings.Join(lines[1:], " "))
		}
		if m := projectURLRe.FindString(block); m != "" {
			entry.URL = strings.TrimRight(m, ".,)")
		}
		if scan != nil {
			entry.Technologies = scan(block)
		}
		entries = append(entries, entry)
	}
	return entries
}

// blankLineBlocks splits on blank lines only. Education entries and project
// names rarely carry the date or role cues the experience block splitter
// keys on, so paragraph boundaries are the safer signal.
func blankLineBlocks(section string) []string {
	var blocks []string
	for _, block := range strings.Split(section, "\n\n") {
		if block = strings.TrimSpace(block); block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
