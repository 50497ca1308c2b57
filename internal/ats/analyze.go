package ats

import (
	"strings"
	"unicode/utf8"
)

// Section names checked for presence in every resume.
const (
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionSummary        = "summary"
	SectionObjective      = "objective"
)

var sectionNames = []string{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionSummary,
	SectionObjective,
}

// Analysis is the intermediate result of scanning resume text.
type Analysis struct {
	FoundKeywords  []string        `json:"foundKeywords"`
	KeywordMatches map[string]int  `json:"keywordMatches"`
	Sections       map[string]bool `json:"sections"`
	Contacts       Contacts        `json:"contacts"`
	Length         int             `json:"length"`
}

// Analyze matches catalog keywords and section names against text. Matching
// is a case-insensitive substring search; found keywords keep catalog order.
func Analyze(text string, catalog Catalog) Analysis {
	lower := strings.ToLower(text)

	a := Analysis{
		FoundKeywords:  []string{},
		KeywordMatches: make(map[string]int),
		Sections:       make(map[string]bool, len(sectionNames)),
		Length:         utf8.RuneCountInString(lower),
	}

	for _, kw := range catalog.keywords {
		needle := strings.ToLower(kw)
		if !strings.Contains(lower, needle) {
			continue
		}
		a.FoundKeywords = append(a.FoundKeywords, kw)
		a.KeywordMatches[kw] = strings.Count(lower, needle)
	}

	for _, name := range sectionNames {
		a.Sections[name] = strings.Contains(lower, name)
	}

	a.Contacts = FindContacts(text)
	return a
}
