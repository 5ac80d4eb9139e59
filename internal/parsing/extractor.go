// Package parsing extracts typed résumé fields from plain text using
// regular expressions and keyword heuristics.
//
// Each field has its own extractor behind the FieldExtractor interface so a
// single heuristic can be replaced without touching the others.
package parsing

import (
	"github.com/jonathan/resume-matcher/internal/sections"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Document is the cleaned text of one résumé together with its located sections
type Document struct {
	Text     string
	Sections sections.Index
}

// NewDocument segments text once so every extractor sees the same sections
func NewDocument(text string, seg *sections.Segmenter) *Document {
	return &Document{Text: text, Sections: seg.Segment(text)}
}

// Section returns the body of a section and whether its header was found
func (d *Document) Section(section vocabulary.Section) (string, bool) {
	if d.Sections == nil {
		return "", false
	}
	return d.Sections.Get(section)
}

// FieldExtractor extracts one typed field from a document
type FieldExtractor[T any] interface {
	Extract(doc *Document) (T, error)
}

// ExtractorFunc adapts a function to FieldExtractor
type ExtractorFunc[T any] func(doc *Document) (T, error)

// Extract calls f(doc)
func (f ExtractorFunc[T]) Extract(doc *Document) (T, error) {
	return f(doc)
}
