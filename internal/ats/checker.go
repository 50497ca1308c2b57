// Package ats scores resumes against a fixed applicant tracking rubric:
// section headings, catalog keywords, contact details, length and list
// formatting.
package ats

import (
	"github.com/rs/zerolog"
)

const snippetLength = 1000

// Result is the feedback returned for one resume.
type Result struct {
	Score           int              `json:"score"`
	Breakdown       []BreakdownEntry `json:"breakdown"`
	MatchedKeywords []string         `json:"matchedKeywords"`
	Contacts        Contacts         `json:"contacts"`
	Suggestions     []string         `json:"suggestions"`
	RawTextSnippet  string           `json:"rawTextSnippet"`

	// Source records which extraction path produced the text.
	Source string `json:"-"`
}

// Checker runs the full pipeline against a default keyword catalog loaded at
// startup. It holds no mutable state and is safe for concurrent use.
type Checker struct {
	catalog Catalog
	logger  zerolog.Logger
}

// NewChecker returns a Checker scoring against catalog.
func NewChecker(catalog Catalog, logger zerolog.Logger) *Checker {
	return &Checker{
		catalog: catalog,
		logger:  logger,
	}
}

// Catalog returns the default catalog the checker was built with.
func (c *Checker) Catalog() Catalog {
	return c.catalog
}

// Check extracts, analyzes and scores a document. A nil keywords slice uses
// the default catalog; any other value replaces it for matching only.
func (c *Checker) Check(data []byte, keywords []string) Result {
	ext := ExtractText(data)

	catalog := c.catalog
	if keywords != nil {
		catalog = NewCatalog(keywords)
	}

	analysis := Analyze(ext.Text, catalog)
	score, breakdown := Score(analysis, ext.Text, c.catalog.Len())

	c.logger.Debug().
		Str("source", ext.Source).
		Int("bytes", len(data)).
		Int("chars", analysis.Length).
		Int("score", score).
		Msg("resume checked")

	return Result{
		Score:           score,
		Breakdown:       breakdown,
		MatchedKeywords: analysis.FoundKeywords,
		Contacts:        analysis.Contacts,
		Suggestions:     Suggest(analysis, score),
		RawTextSnippet:  snippet(ext.Text, snippetLength),
		Source:          ext.Source,
	}
}

// snippet returns at most n leading runes of s.
func snippet(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
