// Package sections locates named résumé sections by their header lines.
package sections

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// headerDecoration is stripped from both ends of a candidate header line
const headerDecoration = " \t#*-=_:|•"

// maxHeaderLen is the longest line considered as a standalone header
const maxHeaderLen = 60

// Segmenter finds section boundaries using the header aliases of a vocabulary
type Segmenter struct {
	vocab *vocabulary.Vocabulary
}

// New creates a Segmenter over the given vocabulary
func New(vocab *vocabulary.Vocabulary) *Segmenter {
	return &Segmenter{vocab: vocab}
}

// Index maps each section found in a document to its body text
type Index map[vocabulary.Section]string

// Get returns the body of a section and whether its header was found
func (idx Index) Get(section vocabulary.Section) (string, bool) {
	body, ok := idx[section]
	return body, ok
}

// Find returns the body of a known section, or false when no header for it exists
func (s *Segmenter) Find(text string, section vocabulary.Section) (string, bool) {
	return s.FindSection(text, s.vocab.Aliases(section))
}

// FindSection returns the text between the first header line matching one of
// aliases and the next header line of a different known section (or the end of
// the document). The boolean is false when no line matches any alias; callers
// then fall back to scanning the whole document.
func (s *Segmenter) FindSection(text string, aliases []string) (string, bool) {
	if text == "" || len(aliases) == 0 {
		return "", false
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		inline, ok := matchHeader(line, aliases, true)
		if !ok {
			continue
		}

		body := make([]string, 0, len(lines)-i)
		if inline != "" {
			body = append(body, inline)
		}
		for _, next := range lines[i+1:] {
			if s.isOtherHeader(next, aliases) {
				break
			}
			body = append(body, next)
		}
		return strings.TrimSpace(strings.Join(body, "\n")), true
	}

	return "", false
}

// Segment returns the bodies of all known sections present in text
func (s *Segmenter) Segment(text string) Index {
	idx := make(Index)
	for section, aliases := range s.vocab.SectionAliases {
		if body, ok := s.FindSection(text, aliases); ok {
			idx[section] = body
		}
	}
	return idx
}

// IsHeader reports whether a line is a header of any known section
func (s *Segmenter) IsHeader(line string) bool {
	for _, aliases := range s.vocab.SectionAliases {
		if _, ok := matchHeader(line, aliases, false); ok {
			return true
		}
	}
	return false
}

// isOtherHeader reports whether line is a standalone header of a section other
// than the one described by current. "Label: content" lines never end a section;
// they are common inside entries ("Technologies: Go, Docker").
func (s *Segmenter) isOtherHeader(line string, current []string) bool {
	for _, aliases := range s.vocab.SectionAliases {
		if _, ok := matchHeader(line, aliases, false); !ok {
			continue
		}
		if _, same := matchHeader(line, current, false); same {
			continue
		}
		return true
	}
	return false
}

// matchHeader reports whether line is a header for one of aliases. A header is
// the alias alone (ignoring case, decoration and a trailing colon). With
// allowInline, "Alias: content" also matches and the content is returned.
func matchHeader(line string, aliases []string, allowInline bool) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}

	if len(trimmed) <= maxHeaderLen {
		bare := strings.ToLower(strings.Trim(trimmed, headerDecoration))
		for _, alias := range aliases {
			if bare == strings.ToLower(alias) {
				return "", true
			}
		}
	}

	if !allowInline {
		return "", false
	}

	// "Skills: Python, Go"
	head, rest, found := strings.Cut(trimmed, ":")
	if !found {
		return "", false
	}
	head = strings.ToLower(strings.Trim(head, headerDecoration))
	for _, alias := range aliases {
		if head == strings.ToLower(alias) {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}
