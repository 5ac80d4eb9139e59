package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

var (
	gpaPattern = regexp.MustCompile(`(?i)(?:gpa|grade point average)\s*[:\-]?\s*(\d{1,2}(?:\.\d{1,3})?)`)
	// degreeTerminator ends a degree phrase at a list separator, a spaced dash or a year
	degreeTerminator = regexp.MustCompile(`\s*(?:[,|(;]|\s[-–—]\s|\b(?:19|20)\d{2}\b)`)
	fieldSeparatorIn = regexp.MustCompile(`(?i)\s+in\s+`)
	fieldSeparatorOf = regexp.MustCompile(`(?i)\s+of\s+`)
	// datedSuffix is everything from the first (optionally month-prefixed) year to the end of a line
	datedSuffix = regexp.MustCompile(`(?i)[\s,|(\-–—]*(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?(?:\d{1,2}[/\-])?(?:19|20)\d{2}\b.*$`)
)

// genericDegreeNames complete a degree title rather than naming a field:
// "Master of Science" is a degree, "Bachelor of Computer Science" names a field.
var genericDegreeNames = map[string]bool{
	"science": true, "sciences": true, "arts": true, "fine arts": true, "engineering": true,
	"business administration": true, "philosophy": true, "technology": true, "laws": true,
	"education": true, "commerce": true, "applied science": true, "applied sciences": true,
}

// EducationExtractor reads one entry per paragraph of the Education section
type EducationExtractor struct {
	degree *regexp.Regexp
}

// NewEducationExtractor builds the degree matcher from the vocabulary's degree keywords
func NewEducationExtractor(vocab *vocabulary.Vocabulary) *EducationExtractor {
	keywords := make([]string, 0, len(vocab.DegreeKeywords))
	for _, kw := range vocab.DegreeKeywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, strings.ReplaceAll(regexp.QuoteMeta(kw), " ", `\s+`))
		}
	}
	e := &EducationExtractor{}
	if len(keywords) > 0 {
		e.degree = regexp.MustCompile(`(?i)(?:^|[^a-z])((?:` + strings.Join(keywords, "|") + `)(?:'?s)?)(?:[^a-z]|$)`)
	}
	return e
}

// Extract returns no entries when the document has no Education section
func (e *EducationExtractor) Extract(doc *Document) ([]types.ExtractedEducation, error) {
	section, ok := doc.Section(vocabulary.SectionEducation)
	if !ok {
		return []types.ExtractedEducation{}, nil
	}
	return e.ExtractSection(section), nil
}

// ExtractSection parses an Education section body, one entry per blank-line separated block.
// Blocks with neither an institution nor a degree are dropped.
func (e *EducationExtractor) ExtractSection(section string) []types.ExtractedEducation {
	entries := make([]types.ExtractedEducation, 0)
	for _, block := range splitBlocks(section) {
		entry, ok := e.parseBlock(block)
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (e *EducationExtractor) parseBlock(lines []string) (types.ExtractedEducation, bool) {
	var entry types.ExtractedEducation

	degreeLine := -1
	for i, line := range lines {
		if degree, field, ok := e.matchDegree(line); ok {
			entry.Degree, entry.FieldOfStudy = degree, field
			degreeLine = i
			break
		}
	}

	entry.Institution = findInstitution(lines, degreeLine)

	text := strings.Join(lines, "\n")
	if year, ok := LatestYear(text); ok {
		entry.GraduationYear = &year
	}
	if m := gpaPattern.FindStringSubmatch(text); m != nil {
		if gpa, err := strconv.ParseFloat(m[1], 64); err == nil {
			entry.GPA = &gpa
		}
	}

	return entry, entry.Institution != "" || entry.Degree != ""
}

// matchDegree finds a degree keyword in line and splits the phrase that starts
// there into degree and field of study on "in", or failing that on "of"
func (e *EducationExtractor) matchDegree(line string) (string, string, bool) {
	if e.degree == nil {
		return "", "", false
	}
	loc := e.degree.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", "", false
	}

	phrase := line[loc[2]:]
	if cut := degreeTerminator.FindStringIndex(phrase); cut != nil && cut[0] > 0 {
		phrase = phrase[:cut[0]]
	}
	phrase = normalizeSpaces(phrase)

	if idx := fieldSeparatorIn.FindStringIndex(phrase); idx != nil {
		return strings.TrimSpace(phrase[:idx[0]]), strings.TrimSpace(phrase[idx[1]:]), true
	}
	if idx := fieldSeparatorOf.FindStringIndex(phrase); idx != nil {
		field := strings.TrimSpace(phrase[idx[1]:])
		if !genericDegreeNames[strings.ToLower(field)] {
			return strings.TrimSpace(phrase[:idx[0]]), field, true
		}
	}
	return phrase, "", true
}

// findInstitution takes the first line of the block. When that line is the
// degree line, the next plain line is used instead. Bullet lines never name an
// institution.
func findInstitution(lines []string, degreeLine int) string {
	for i, line := range lines {
		if isBulletLine(line) {
			continue
		}
		if i == degreeLine && len(lines) > 1 {
			continue
		}
		if i == degreeLine {
			return ""
		}
		name := normalizeSpaces(datedSuffix.ReplaceAllString(line, ""))
		name = strings.TrimRight(name, " ,|-–—")
		if name != "" {
			return name
		}
	}
	return ""
}
