package seniority

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromYears(t *testing.T) {
	assert.Equal(t, Entry, FromYears(0))
	assert.Equal(t, Entry, FromYears(2))
	assert.Equal(t, Mid, FromYears(3.5))
	assert.Equal(t, Mid, FromYears(5))
	assert.Equal(t, Senior, FromYears(8))
	assert.Equal(t, Senior, FromYears(10))
	assert.Equal(t, Executive, FromYears(15))
}

func TestFromJobText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Level
	}{
		{"senior keyword", "We need a Senior Backend Engineer", Senior},
		{"staff keyword wins over years", "Staff engineer, 3 years minimum", Senior},
		{"entry keyword", "Junior developer wanted", Entry},
		{"years figure", "Requires 4+ years of backend experience", Mid},
		{"years figure high", "12 years of leadership experience", Executive},
		{"no cues defaults to mid", "Backend engineer for our payments team", Mid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromJobText(tt.text))
		})
	}
}

func TestYearsFigure(t *testing.T) {
	years, ok := YearsFigure("5+ years of experience")
	assert.True(t, ok)
	assert.Equal(t, 5.0, years)

	years, ok = YearsFigure("1 year minimum")
	assert.True(t, ok)
	assert.Equal(t, 1.0, years)

	_, ok = YearsFigure("no figure")
	assert.False(t, ok)
}

func TestIndexAndDistance(t *testing.T) {
	assert.Equal(t, 0, Entry.Index())
	assert.Equal(t, 3, Executive.Index())
	assert.Equal(t, 1, Level("unknown").Index())

	assert.Equal(t, 2, Distance(Entry, Senior))
	assert.Equal(t, 2, Distance(Senior, Entry))
	assert.Equal(t, 0, Distance(Mid, Mid))
}
