// Package vocabulary holds the fixed word lists the extraction pipeline and scorers match against.
//
// A Vocabulary is built once at startup (Default, optionally merged with overrides from a file)
// and injected into the components that need it. It is never mutated after construction, so a
// single instance is shared across goroutines without locking.
package vocabulary

import (
	"fmt"
	"strings"
)

// Section identifies a résumé section
type Section string

// Sections with extractors
const (
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
	SectionSkills     Section = "skills"
)

// Sections recognised only so that they terminate the preceding section
const (
	SectionSummary        Section = "summary"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionAwards         Section = "awards"
	SectionLanguages      Section = "languages"
	SectionInterests      Section = "interests"
	SectionReferences     Section = "references"
)

// Vocabulary is the read-only configuration data shared by extractors and scorers
type Vocabulary struct {
	// Skills is the reference vocabulary, in display casing
	Skills []string `mapstructure:"skills"`
	// DegreeKeywords are lower-case phrases that mark a line as a degree
	DegreeKeywords []string `mapstructure:"degree_keywords"`
	// SectionAliases maps each section to its recognised header phrases
	SectionAliases map[Section][]string `mapstructure:"section_aliases"`
	// Stopwords are rejected as free skill tokens
	Stopwords []string `mapstructure:"stopwords"`
	// ExcludedSiteDomains never fill the personal website slot
	ExcludedSiteDomains []string `mapstructure:"excluded_site_domains"`
	// SkillAliases maps lower-case variants to canonical skill names
	SkillAliases map[string]string `mapstructure:"skill_aliases"`

	stopwords map[string]struct{}
}

// Default returns a new Vocabulary with the built-in lists
func Default() *Vocabulary {
	v := &Vocabulary{
		Skills:              append([]string(nil), defaultSkills...),
		DegreeKeywords:      append([]string(nil), defaultDegreeKeywords...),
		SectionAliases:      make(map[Section][]string, len(defaultSectionAliases)),
		Stopwords:           append([]string(nil), defaultStopwords...),
		ExcludedSiteDomains: append([]string(nil), defaultExcludedSiteDomains...),
		SkillAliases:        make(map[string]string, len(defaultSkillAliases)),
	}
	for section, aliases := range defaultSectionAliases {
		v.SectionAliases[section] = append([]string(nil), aliases...)
	}
	for variant, canonical := range defaultSkillAliases {
		v.SkillAliases[variant] = canonical
	}
	v.index()
	return v
}

// Merge returns a new Vocabulary with the non-empty lists of override replacing
// or extending the lists of v. Skills and stopwords are appended (deduplicated),
// section aliases and skill aliases are merged per key, and degree keywords and
// excluded domains are appended.
func (v *Vocabulary) Merge(override *Vocabulary) *Vocabulary {
	out := v.clone()
	if override == nil {
		return out
	}

	out.Skills = appendUnique(out.Skills, override.Skills)
	out.DegreeKeywords = appendUnique(out.DegreeKeywords, lowerAll(override.DegreeKeywords))
	out.Stopwords = appendUnique(out.Stopwords, lowerAll(override.Stopwords))
	out.ExcludedSiteDomains = appendUnique(out.ExcludedSiteDomains, lowerAll(override.ExcludedSiteDomains))
	for section, aliases := range override.SectionAliases {
		key := Section(strings.ToLower(string(section)))
		out.SectionAliases[key] = appendUnique(out.SectionAliases[key], lowerAll(aliases))
	}
	for variant, canonical := range override.SkillAliases {
		out.SkillAliases[strings.ToLower(variant)] = canonical
	}
	out.index()
	return out
}

// Validate checks that the lists every extractor depends on are populated
func (v *Vocabulary) Validate() error {
	if len(v.Skills) == 0 {
		return fmt.Errorf("vocabulary: skills list is empty")
	}
	if len(v.DegreeKeywords) == 0 {
		return fmt.Errorf("vocabulary: degree keyword list is empty")
	}
	for _, section := range []Section{SectionEducation, SectionExperience, SectionSkills} {
		if len(v.SectionAliases[section]) == 0 {
			return fmt.Errorf("vocabulary: no header aliases for section %q", section)
		}
	}
	return nil
}

// Aliases returns the header aliases for a section
func (v *Vocabulary) Aliases(section Section) []string {
	return v.SectionAliases[section]
}

// IsStopword reports whether a lower-case token is a stopword
func (v *Vocabulary) IsStopword(token string) bool {
	token = strings.ToLower(token)
	if v.stopwords == nil {
		for _, w := range v.Stopwords {
			if strings.ToLower(w) == token {
				return true
			}
		}
		return false
	}
	_, ok := v.stopwords[token]
	return ok
}

func (v *Vocabulary) index() {
	v.stopwords = make(map[string]struct{}, len(v.Stopwords))
	for _, w := range v.Stopwords {
		v.stopwords[strings.ToLower(w)] = struct{}{}
	}
}

func (v *Vocabulary) clone() *Vocabulary {
	out := &Vocabulary{
		Skills:              append([]string(nil), v.Skills...),
		DegreeKeywords:      append([]string(nil), v.DegreeKeywords...),
		SectionAliases:      make(map[Section][]string, len(v.SectionAliases)),
		Stopwords:           append([]string(nil), v.Stopwords...),
		ExcludedSiteDomains: append([]string(nil), v.ExcludedSiteDomains...),
		SkillAliases:        make(map[string]string, len(v.SkillAliases)),
	}
	for section, aliases := range v.SectionAliases {
		out.SectionAliases[section] = append([]string(nil), aliases...)
	}
	for variant, canonical := range v.SkillAliases {
		out.SkillAliases[variant] = canonical
	}
	return out
}

func appendUnique(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, s := range base {
		seen[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range extra {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		base = append(base, s)
	}
	return base
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
