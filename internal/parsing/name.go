package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/sections"
)

const (
	nameScanChars = 500
	nameMinChars  = 3
	nameMaxChars  = 50
)

var (
	resumeWord      = regexp.MustCompile(`(?i)\b(?:resume|résumé|cv|curriculum vitae)\b`)
	contactKeywords = regexp.MustCompile(`(?i)\b(?:phone|email|e-mail|tel|mobile|cell|address|linkedin|github|http|https|www)\b`)
)

// NameStrategy guesses the candidate's full name from the document text
type NameStrategy func(text string) string

// HeaderLineName returns a NameStrategy that takes the first short line near the
// top of the document that is not contact information or a section header.
//
// It is knowingly imprecise: a job title or tagline printed above the name
// ("Senior Software Engineer") is returned instead of the name.
func HeaderLineName(seg *sections.Segmenter) NameStrategy {
	return func(text string) string {
		head := text
		if len(head) > nameScanChars {
			head = head[:nameScanChars]
			// do not split a multi-byte rune
			for !utf8.ValidString(head) && len(head) > 0 {
				head = head[:len(head)-1]
			}
		}

		for _, line := range strings.Split(head, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.Contains(line, "@") || resumeWord.MatchString(line) || contactKeywords.MatchString(line) {
				continue
			}
			if FindPhone(line) != "" || (seg != nil && seg.IsHeader(line)) {
				continue
			}
			n := utf8.RuneCountInString(line)
			if n >= nameMinChars && n <= nameMaxChars {
				return normalizeSpaces(line)
			}
		}
		return ""
	}
}

// Extract adapts the strategy to FieldExtractor
func (s NameStrategy) Extract(doc *Document) (string, error) {
	return s(doc.Text), nil
}
