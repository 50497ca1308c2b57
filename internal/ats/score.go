package ats

import (
	"fmt"
	"strings"
)

// Rubric weights.
const (
	maxSectionPoints   = 30
	maxKeywordPoints   = 35
	emailPoints        = 5
	phonePoints        = 5
	formattingPoints   = 10
	maxScore           = 100
	minDetailedLength  = 600
	goodScoreThreshold = 80
	fairScoreThreshold = 60
)

var coreSections = []string{SectionExperience, SectionEducation, SectionSkills}

type BreakdownEntry struct {
	Item   string `json:"item"`
	Points int    `json:"points"`
	Note   string `json:"note"`
}

// Score rates an analysis out of 100 and explains each component.
//
// catalogSize is the size of the default catalog. The keyword ratio is taken
// against it even when the analysis was run with a caller-supplied keyword
// list.
func Score(a Analysis, text string, catalogSize int) (int, []BreakdownEntry) {
	breakdown := make([]BreakdownEntry, 0, 5)
	total := 0

	add := func(item string, points int, note string) {
		total += points
		breakdown = append(breakdown, BreakdownEntry{Item: item, Points: points, Note: note})
	}

	present := 0
	for _, s := range coreSections {
		if a.Sections[s] {
			present++
		}
	}
	add("sections", present*maxSectionPoints/len(coreSections),
		fmt.Sprintf("%d/%d core sections", present, len(coreSections)))

	matched := len(a.FoundKeywords)
	add("keywords", matched*maxKeywordPoints/max(1, catalogSize),
		fmt.Sprintf("%d keywords matched", matched))

	contactPts := 0
	if a.Contacts.HasEmail() {
		contactPts += emailPoints
	}
	if a.Contacts.HasPhone() {
		contactPts += phonePoints
	}
	add("contacts", contactPts,
		fmt.Sprintf("email: %s, phone: %s", yesNo(a.Contacts.HasEmail()), yesNo(a.Contacts.HasPhone())))

	add("length", lengthPoints(a.Length), fmt.Sprintf("chars: %d", a.Length))

	bullets := hasBullets(text)
	fmtPts := 0
	if bullets {
		fmtPts = formattingPoints
	}
	add("formatting", fmtPts, fmt.Sprintf("bullets: %t", bullets))

	return min(maxScore, max(0, total)), breakdown
}

func lengthPoints(length int) int {
	switch {
	case length > 2000:
		return 20
	case length > 1000:
		return 12
	case length > minDetailedLength:
		return 6
	default:
		return 0
	}
}

func hasBullets(text string) bool {
	return strings.Contains(text, "- ") || strings.ContainsAny(text, "•*")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Band buckets a score the way results are presented to candidates.
func Band(score int) string {
	switch {
	case score >= goodScoreThreshold:
		return "excellent"
	case score >= fairScoreThreshold:
		return "good"
	default:
		return "needs_work"
	}
}
