package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	section := `Bachelor of Science in Computer Science
State University, 2016 - 2020
GPA: 3.8/4.0
Relevant coursework: Algorithms, Distributed Systems; Databases

Certificate program without a degree mention
`

	entries := ExtractEducation(section)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Bachelor of Science in Computer Science", e.Degree)
	assert.Equal(t, "State University", e.Institution)
	assert.Equal(t, "3.8", e.GPA)
	assert.Equal(t, "2020", e.GraduationDate)
	assert.Equal(t, []string{"Algorithms", "Distributed Systems", "Databases"}, e.RelevantCourses)
}

func TestExtractEducationLastYearFallback(t *testing.T) {
	entries := ExtractEducation("M.S. Computer Science, MIT, graduated 2018\n")

	require.Len(t, entries, 1)
	assert.Equal(t, "2018", entries[0].GraduationDate)
}

func TestExtractEducationEmpty(t *testing.T) {
	assert.Empty(t, ExtractEducation(""))
	assert.Empty(t, ExtractEducation("nothing educational here"))
}

func TestDegreeLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ph.D. in Physics", "phd"},
		{"Doctorate", "phd"},
		{"Master of Science", "master"},
		{"MBA", "master"},
		{"M.S.", "master"},
		{"Bachelor of Arts", "bachelor"},
		{"B.S.", "bachelor"},
		{"Associate of Applied Science", "associate"},
		{"High school diploma", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DegreeLevel(tt.in), "input %q", tt.in)
	}
}
