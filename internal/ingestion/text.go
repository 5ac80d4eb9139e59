// Package ingestion normalizes extracted document text before it is segmented and parsed.
package ingestion

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	intraLineSpace = regexp.MustCompile(`[ \f\v\x{00A0}]+`)
	// a tab separates columns (DOCX w:tab), so runs holding one stay a tab
	tabRun       = regexp.MustCompile(`[ \f\v\x{00A0}]*\t[ \t\f\v\x{00A0}]*`)
	blankLineRun = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes text content while preserving line and paragraph structure.
// Blank lines are significant downstream (they separate education and experience
// entries), so runs of blank lines are collapsed to one rather than removed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Ligatures and full-width characters from PDF fonts
	content = norm.NFKC.String(content)

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine drops control characters and collapses whitespace within a line
func cleanLine(line string) string {
	line = strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == utf8.RuneError {
			return -1
		}
		return r
	}, line)

	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}

	line = tabRun.ReplaceAllString(line, "\t")
	return intraLineSpace.ReplaceAllString(line, " ")
}

// Truncate bounds text to at most maxChars runes so that pattern matching over
// untrusted input has a fixed upper cost. It reports whether text was cut.
// maxChars <= 0 disables the bound.
func Truncate(text string, maxChars int) (string, bool) {
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text, false
	}

	count := 0
	for i := range text {
		if count == maxChars {
			return text[:i], true
		}
		count++
	}
	return text, false
}
