package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// titleCompanySeparators are tried in order on the first header line
var titleCompanySeparators = []string{" at ", " @ ", " | ", " – ", " — ", " - ", "\t", ", "}

var emptyParens = regexp.MustCompile(`\(\s*\)|\[\s*\]`)

// ExperienceExtractor reads one entry per paragraph of the Experience section.
// Each entry's skills are matched against that paragraph alone.
type ExperienceExtractor struct {
	skills *SkillsExtractor
}

// NewExperienceExtractor creates an ExperienceExtractor that reuses the skills matcher
func NewExperienceExtractor(skills *SkillsExtractor) *ExperienceExtractor {
	return &ExperienceExtractor{skills: skills}
}

// Extract returns no entries when the document has no Experience section
func (e *ExperienceExtractor) Extract(doc *Document) ([]types.ExtractedExperience, error) {
	section, ok := doc.Section(vocabulary.SectionExperience)
	if !ok {
		return []types.ExtractedExperience{}, nil
	}
	return e.ExtractSection(section), nil
}

// ExtractSection parses an Experience section body. A block is kept when it
// yields a title, a company or at least one skill.
func (e *ExperienceExtractor) ExtractSection(section string) []types.ExtractedExperience {
	entries := make([]types.ExtractedExperience, 0)
	for _, block := range splitBlocks(section) {
		entry := e.parseBlock(block)
		if entry.Title != "" || entry.Company != "" || len(entry.Skills) > 0 {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (e *ExperienceExtractor) parseBlock(lines []string) types.ExtractedExperience {
	text := strings.Join(lines, "\n")
	entry := types.ExtractedExperience{Skills: e.skills.MatchVocabulary(text)}

	dates, hasDates := FindDateRange(text)
	if hasDates {
		entry.StartDate = dates.Start
		entry.EndDate = dates.End
	}

	header := headerLines(lines, dates.Text)
	switch len(header) {
	case 0:
	case 1:
		entry.Title, entry.Company = splitTitleCompany(header[0])
	default:
		entry.Title, entry.Company = splitTitleCompany(header[0])
		if entry.Company == "" {
			entry.Company = normalizeSpaces(header[1])
		}
	}
	return entry
}

// headerLines returns up to two leading non-bullet lines with the date range removed.
// Lines holding nothing but the dates are skipped.
func headerLines(lines []string, dateText string) []string {
	out := make([]string, 0, 2)
	for _, line := range lines {
		if len(out) == 2 || isBulletLine(line) {
			break
		}
		if dateText != "" {
			line = strings.Replace(line, dateText, "", 1)
		}
		line = strings.TrimSpace(emptyParens.ReplaceAllString(line, ""))
		line = strings.Trim(line, " \t,|-–—")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitTitleCompany splits "Engineer at Acme" style lines. Without a separator
// the whole line is the title.
func splitTitleCompany(line string) (string, string) {
	for _, sep := range titleCompanySeparators {
		if idx := strings.Index(line, sep); idx > 0 {
			title := normalizeSpaces(line[:idx])
			company := normalizeSpaces(line[idx+len(sep):])
			if title != "" && company != "" {
				return title, company
			}
		}
	}
	return normalizeSpaces(line), ""
}
