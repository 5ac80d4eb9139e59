// Package profile assembles extracted résumé fields into an ExtractedProfile and
// runs the full document-to-profile pipeline.
package profile

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/sections"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Field names reported in extractor failures
const (
	FieldSections   = "sections"
	FieldName       = "fullName"
	FieldContact    = "contact"
	FieldSkills     = "skills"
	FieldEducation  = "education"
	FieldExperience = "experience"
)

// Assembler runs every field extractor over the same text. A failing extractor
// leaves its field empty and never stops the others.
type Assembler struct {
	segmenter  *sections.Segmenter
	name       parsing.FieldExtractor[string]
	contact    parsing.FieldExtractor[types.ExtractedContact]
	skills     parsing.FieldExtractor[[]string]
	education  parsing.FieldExtractor[[]types.ExtractedEducation]
	experience parsing.FieldExtractor[[]types.ExtractedExperience]
	logger     *zap.Logger
}

// Option configures an Assembler
type Option func(*Assembler)

// WithNameStrategy replaces the name heuristic
func WithNameStrategy(s parsing.NameStrategy) Option {
	return func(a *Assembler) { a.name = s }
}

// WithContactExtractor replaces the contact extractor
func WithContactExtractor(e parsing.FieldExtractor[types.ExtractedContact]) Option {
	return func(a *Assembler) { a.contact = e }
}

// WithSkillsExtractor replaces the skills extractor
func WithSkillsExtractor(e parsing.FieldExtractor[[]string]) Option {
	return func(a *Assembler) { a.skills = e }
}

// WithEducationExtractor replaces the education extractor
func WithEducationExtractor(e parsing.FieldExtractor[[]types.ExtractedEducation]) Option {
	return func(a *Assembler) { a.education = e }
}

// WithExperienceExtractor replaces the experience extractor
func WithExperienceExtractor(e parsing.FieldExtractor[[]types.ExtractedExperience]) Option {
	return func(a *Assembler) { a.experience = e }
}

// WithLogger sets the logger used to report extractor failures
func WithLogger(l *zap.Logger) Option {
	return func(a *Assembler) { a.logger = l }
}

// NewAssembler builds the default extractors over vocab. A nil vocab means vocabulary.Default().
func NewAssembler(vocab *vocabulary.Vocabulary, opts ...Option) *Assembler {
	if vocab == nil {
		vocab = vocabulary.Default()
	}

	seg := sections.New(vocab)
	skills := parsing.NewSkillsExtractor(vocab)
	a := &Assembler{
		segmenter:  seg,
		name:       parsing.HeaderLineName(seg),
		contact:    parsing.NewContactExtractor(vocab),
		skills:     skills,
		education:  parsing.NewEducationExtractor(vocab),
		experience: parsing.NewExperienceExtractor(skills),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = logger.OrNop(a.logger)
	return a
}

// Assemble extracts a profile from cleaned text. The profile is never nil and
// every collection is non-nil; failures lists the extractors that did not complete.
func (a *Assembler) Assemble(text string) (*types.ExtractedProfile, []*parsing.ExtractorFailure) {
	var failures []*parsing.ExtractorFailure
	record := func(f *parsing.ExtractorFailure) {
		a.logger.Warn("extractor failed", zap.String("field", f.Field), zap.Error(f.Cause))
		failures = append(failures, f)
	}

	doc := a.segment(text, record)

	p := types.NewExtractedProfile()
	p.FullText = text
	p.FullName = strings.TrimSpace(runExtractor(FieldName, a.name, doc, record))
	p.Contact = runExtractor(FieldContact, a.contact, doc, record)
	p.Skills = dedupeSkills(runExtractor(FieldSkills, a.skills, doc, record))
	p.Education = runExtractor(FieldEducation, a.education, doc, record)
	p.Experience = runExtractor(FieldExperience, a.experience, doc, record)
	p.Normalize()

	return p, failures
}

// segment locates sections once for all extractors. If segmentation fails the
// extractors still run, scanning a document without sections.
func (a *Assembler) segment(text string, record func(*parsing.ExtractorFailure)) (doc *parsing.Document) {
	defer func() {
		if r := recover(); r != nil {
			record(&parsing.ExtractorFailure{Field: FieldSections, Cause: &parsing.PanicError{Value: r}})
			doc = &parsing.Document{Text: text, Sections: sections.Index{}}
		}
	}()
	return parsing.NewDocument(text, a.segmenter)
}

// runExtractor converts an error or a panic from ex into a recorded failure and
// the zero value of T
func runExtractor[T any](
	field string,
	ex parsing.FieldExtractor[T],
	doc *parsing.Document,
	record func(*parsing.ExtractorFailure),
) (out T) {
	if ex == nil {
		return out
	}

	defer func() {
		if r := recover(); r != nil {
			var zero T
			out = zero
			record(&parsing.ExtractorFailure{Field: field, Cause: &parsing.PanicError{Value: r}})
		}
	}()

	v, err := ex.Extract(doc)
	if err != nil {
		record(&parsing.ExtractorFailure{Field: field, Cause: err})
		var zero T
		return zero
	}
	return v
}

func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
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
	return out
}
