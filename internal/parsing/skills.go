package parsing

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

const (
	minTokenChars = 3
	maxTokenChars = 40
	maxTokenWords = 4
	// maxLabelChars bounds the "Languages:" style prefix stripped from skills lines
	maxLabelChars = 30
	// shortSkillLength is the longest skill matched case-sensitively
	shortSkillLength = 2
)

var (
	tokenDelimiters = regexp.MustCompile(`[,|;•·▪●◦\t]+`)
	technicalToken  = regexp.MustCompile(`^[A-Za-z0-9#+./\- ]+$`)
	leadingBullet   = regexp.MustCompile(`^(?:[-*–>]+\s*)+`)
	parenthetical   = regexp.MustCompile(`\s*\([^)]*\)`)
)

// SkillsExtractor finds skills by vocabulary matching over the whole document
// plus free-token extraction from the Skills section.
//
// Vocabulary matching alone misses niche technologies; free tokens alone are too
// noisy to take from the whole document, so they are only read from the section.
type SkillsExtractor struct {
	vocab    *vocabulary.Vocabulary
	patterns []skillPattern
	// known holds the lower-cased vocabulary skills
	known map[string]struct{}
}

type skillPattern struct {
	skill string
	re    *regexp.Regexp
}

// NewSkillsExtractor compiles one matcher per vocabulary skill
func NewSkillsExtractor(vocab *vocabulary.Vocabulary) *SkillsExtractor {
	patterns := make([]skillPattern, 0, len(vocab.Skills))
	known := make(map[string]struct{}, len(vocab.Skills))
	for _, skill := range vocab.Skills {
		if strings.TrimSpace(skill) == "" {
			continue
		}
		patterns = append(patterns, skillPattern{skill: skill, re: compileSkillPattern(skill)})
		known[strings.ToLower(normalizeSpaces(skill))] = struct{}{}
	}
	return &SkillsExtractor{vocab: vocab, patterns: patterns, known: known}
}

// compileSkillPattern matches a skill as a whole term: the characters on either
// side must not be letters or digits, so "Java" does not match "JavaScript".
// Skills of two characters or fewer ("Go") are matched case-sensitively to keep
// ordinary words out of the whole-document pass; inside the Skills section they
// are recognised in any casing by SectionTokens.
func compileSkillPattern(skill string) *regexp.Regexp {
	parts := strings.Fields(skill)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	body := strings.Join(parts, `\s+`)

	flags := "(?i)"
	if utf8.RuneCountInString(skill) <= shortSkillLength {
		flags = ""
	}
	return regexp.MustCompile(flags + `(?:^|[^\pL\pN])(` + body + `)(?:[^\pL\pN]|$)`)
}

// Extract returns the union of vocabulary matches over the full text and free
// tokens from the Skills section, deduplicated case-insensitively
func (e *SkillsExtractor) Extract(doc *Document) ([]string, error) {
	found := e.MatchVocabulary(doc.Text)

	if section, ok := doc.Section(vocabulary.SectionSkills); ok {
		found = mergeSkills(found, e.SectionTokens(section))
	}
	return found, nil
}

// MatchVocabulary returns the vocabulary skills present in text, in order of
// first appearance, with the casing used in the text
func (e *SkillsExtractor) MatchVocabulary(text string) []string {
	type hit struct {
		pos  int
		text string
	}

	hits := make([]hit, 0)
	for _, p := range e.patterns {
		loc := p.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		hits = append(hits, hit{pos: loc[2], text: normalizeSpaces(text[loc[2]:loc[3]])})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.text)
	}
	return mergeSkills(nil, out)
}

// SectionTokens splits a Skills section into candidate tokens and keeps those
// that look like technology names. A token equal to a vocabulary skill in any
// casing is always kept, however short.
func (e *SkillsExtractor) SectionTokens(section string) []string {
	tokens := make([]string, 0)
	for _, line := range strings.Split(section, "\n") {
		line = stripLabel(strings.TrimSpace(line))
		for _, raw := range tokenDelimiters.Split(line, -1) {
			token := cleanToken(raw)
			if e.isTechnicalToken(token) {
				tokens = append(tokens, token)
			}
		}
	}
	return mergeSkills(nil, tokens)
}

func (e *SkillsExtractor) isTechnicalToken(token string) bool {
	if token == "" {
		return false
	}
	if _, ok := e.known[strings.ToLower(token)]; ok {
		return true
	}
	n := utf8.RuneCountInString(token)
	if n < minTokenChars || n > maxTokenChars {
		return false
	}
	if !technicalToken.MatchString(token) {
		return false
	}
	if len(strings.Fields(token)) > maxTokenWords {
		return false
	}
	if e.vocab.IsStopword(token) {
		return false
	}
	return strings.IndexFunc(token, unicode.IsLetter) >= 0
}

// stripLabel removes a short "Label:" prefix ("Languages: Python, Go")
func stripLabel(line string) string {
	head, rest, found := strings.Cut(line, ":")
	if !found || len(head) > maxLabelChars {
		return line
	}
	return rest
}

func cleanToken(raw string) string {
	token := strings.TrimSpace(raw)
	token = leadingBullet.ReplaceAllString(token, "")
	token = parenthetical.ReplaceAllString(token, "")
	token = strings.Trim(token, " ()[]\"'")
	token = strings.TrimRight(token, ".")
	return normalizeSpaces(token)
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// mergeSkills appends extra to base, skipping case-insensitive duplicates and
// keeping the first-seen casing
func mergeSkills(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, s := range list {
			key := strings.ToLower(s)
			if s == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
