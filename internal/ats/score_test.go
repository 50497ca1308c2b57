package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyAnalysis() Analysis {
	return Analyze("", Catalog{})
}

func pointsFor(t *testing.T, breakdown []BreakdownEntry, item string) int {
	t.Helper()
	for _, b := range breakdown {
		if b.Item == item {
			return b.Points
		}
	}
	t.Fatalf("breakdown has no %q entry", item)
	return 0
}

func TestScore_BreakdownOrderAndNotes(t *testing.T) {
	a := emptyAnalysis()
	a.Sections[SectionExperience] = true
	a.Sections[SectionSkills] = true
	a.FoundKeywords = []string{"go", "sql"}
	a.Contacts = Contacts{Email: "a@b.io"}
	a.Length = 1500

	score, breakdown := Score(a, "plain text", 10)

	require.Len(t, breakdown, 5)
	assert.Equal(t, []BreakdownEntry{
		{Item: "sections", Points: 20, Note: "2/3 core sections"},
		{Item: "keywords", Points: 7, Note: "2 keywords matched"},
		{Item: "contacts", Points: 5, Note: "email: yes, phone: no"},
		{Item: "length", Points: 12, Note: "chars: 1500"},
		{Item: "formatting", Points: 0, Note: "bullets: false"},
	}, breakdown)
	assert.Equal(t, 44, score)
}

func TestScore_SectionPoints(t *testing.T) {
	tests := []struct {
		sections []string
		want     int
	}{
		{nil, 0},
		{[]string{SectionEducation}, 10},
		{[]string{SectionEducation, SectionSkills}, 20},
		{[]string{SectionExperience, SectionEducation, SectionSkills}, 30},
		{[]string{SectionProjects, SectionSummary, SectionObjective, SectionCertifications}, 0},
	}

	for _, tt := range tests {
		a := emptyAnalysis()
		for _, s := range tt.sections {
			a.Sections[s] = true
		}
		_, breakdown := Score(a, "", 1)
		assert.Equal(t, tt.want, pointsFor(t, breakdown, "sections"), tt.sections)
	}
}

func TestScore_KeywordPoints(t *testing.T) {
	tests := []struct {
		name        string
		matched     int
		catalogSize int
		want        int
	}{
		{"none", 0, 50, 0},
		{"all", 50, 50, 35},
		{"half rounds down", 25, 50, 17},
		{"one of fifty", 1, 50, 0},
		{"one of two", 1, 2, 17},
		{"empty catalog", 0, 0, 0},
		{"empty catalog counts as one", 1, 0, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := emptyAnalysis()
			a.FoundKeywords = make([]string, tt.matched)
			_, breakdown := Score(a, "", tt.catalogSize)
			assert.Equal(t, tt.want, pointsFor(t, breakdown, "keywords"))
		})
	}
}

func TestScore_LengthThresholds(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{600, 0},
		{601, 6},
		{1000, 6},
		{1001, 12},
		{2000, 12},
		{2001, 20},
		{50000, 20},
	}

	for _, tt := range tests {
		a := emptyAnalysis()
		a.Length = tt.length
		_, breakdown := Score(a, "", 1)
		assert.Equal(t, tt.want, pointsFor(t, breakdown, "length"), "length %d", tt.length)
	}
}

func TestScore_Formatting(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"- led the team", 10},
		{"• built the api", 10},
		{"* shipped it", 10},
		{"well-known hyphen", 0},
		{"no markers at all", 0},
		{"trailing dash -", 0},
	}

	for _, tt := range tests {
		_, breakdown := Score(emptyAnalysis(), tt.text, 1)
		assert.Equal(t, tt.want, pointsFor(t, breakdown, "formatting"), tt.text)
	}
}

func TestScore_ClampsToHundred(t *testing.T) {
	a := emptyAnalysis()
	for _, s := range coreSections {
		a.Sections[s] = true
	}
	a.FoundKeywords = []string{"a", "b"}
	a.Contacts = Contacts{Email: "a@b.io", Phone: "5551234567"}
	a.Length = 2500

	score, breakdown := Score(a, "• item", 2)

	sum := 0
	for _, b := range breakdown {
		sum += b.Points
	}
	assert.Equal(t, 105, sum)
	assert.Equal(t, 100, score)
}

func TestBand(t *testing.T) {
	assert.Equal(t, "needs_work", Band(0))
	assert.Equal(t, "needs_work", Band(59))
	assert.Equal(t, "good", Band(60))
	assert.Equal(t, "good", Band(79))
	assert.Equal(t, "excellent", Band(80))
	assert.Equal(t, "excellent", Band(100))
}
