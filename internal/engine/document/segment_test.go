package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@example.com | (555) 123-4567

Summary
Backend engineer with eight years of experience.

Work Experience
Senior Engineer at Initech
Jan 2019 - Present

Education
B.S. Computer Science, State University

Skills
Go, Python, PostgreSQL
`

func TestSegment(t *testing.T) {
	sections := Segment(sampleResume, DefaultToggles())
	require.Len(t, sections, 5)

	assert.Equal(t, KindContact, sections[0].Kind)
	assert.Contains(t, sections[0].Text, "Jane Doe")
	assert.Contains(t, sections[0].Text, "jane@example.com")

	assert.Equal(t, "Backend engineer with eight years of experience.", FindSection(sections, KindSummary))
	assert.Contains(t, FindSection(sections, KindExperience), "Senior Engineer at Initech")
	assert.Contains(t, FindSection(sections, KindEducation), "State University")
	assert.Equal(t, "Go, Python, PostgreSQL", FindSection(sections, KindSkills))
}

func TestSegmentFirstHeadingWinsPerKind(t *testing.T) {
	text := "Skills\nGo\n\nSkills\nPython\n"

	sections := Segment(text, DefaultToggles())

	var skills []Section
	for _, s := range sections {
		if s.Kind == KindSkills {
			skills = append(skills, s)
		}
	}
	require.Len(t, skills, 1)
	// The repeated heading still terminates the first span.
	assert.Equal(t, "Go", skills[0].Text)
}

func TestSegmentNoHeadings(t *testing.T) {
	sections := Segment("Jane Doe\njane@example.com\n", DefaultToggles())

	require.Len(t, sections, 1)
	assert.Equal(t, KindContact, sections[0].Kind)
	assert.Empty(t, FindSection(sections, KindExperience))
}

func TestSegmentLongLineIsNotHeading(t *testing.T) {
	text := "Intro\n\nMy experience spans a decade of building distributed systems at scale\n"

	sections := Segment(text, DefaultToggles())
	assert.Empty(t, FindSection(sections, KindExperience))
}

func TestSegmentToggles(t *testing.T) {
	toggles := DefaultToggles()
	toggles.Skills = false
	toggles.Contact = false

	sections := Segment(sampleResume, toggles)

	assert.Empty(t, FindSection(sections, KindSkills))
	assert.Empty(t, FindSection(sections, KindContact))
	assert.NotEmpty(t, FindSection(sections, KindEducation))
}

func TestSegmentEmptyInput(t *testing.T) {
	assert.Empty(t, Segment("", DefaultToggles()))
}
