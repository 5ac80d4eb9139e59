package scoring

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Evidence source names, in priority order
const (
	SourceResume  = "parsed_resume"
	SourceProfile = "profile"
)

// ResumeSkillBonus is the flat bonus for a skill found in parsed résumé data
const ResumeSkillBonus = 2.0

// maxSkillBonus caps the bonus earned from years of experience or proficiency
const maxSkillBonus = 3.0

// evidenceSource is one origin of candidate data. Parsed résumé data comes
// before the manually maintained profile fields.
type evidenceSource struct {
	name       string
	skills     map[string]float64 // skill key -> bonus points
	education  []string           // degree texts
	experience []experienceEntry
}

type experienceEntry struct {
	title  string
	start  *string
	end    *string
	skills []string
}

// evidenceSources lists the sources present on a profile in priority order
func evidenceSources(p *types.StudentProfile, vocab *vocabulary.Vocabulary) []evidenceSource {
	sources := make([]evidenceSource, 0, 2)
	if p.ParsedResumeData != nil {
		sources = append(sources, resumeSource(p.ParsedResumeData, vocab))
	}
	return append(sources, profileSource(p, vocab))
}

func resumeSource(r *types.ExtractedProfile, vocab *vocabulary.Vocabulary) evidenceSource {
	src := evidenceSource{name: SourceResume, skills: make(map[string]float64, len(r.Skills))}
	for _, s := range r.Skills {
		if key := vocab.SkillKey(s); key != "" {
			src.skills[key] = ResumeSkillBonus
		}
	}
	for _, e := range r.Education {
		src.education = append(src.education, e.Degree)
	}
	for _, e := range r.Experience {
		src.experience = append(src.experience, experienceEntry{
			title: e.Title, start: e.StartDate, end: e.EndDate, skills: e.Skills,
		})
	}
	return src
}

func profileSource(p *types.StudentProfile, vocab *vocabulary.Vocabulary) evidenceSource {
	src := evidenceSource{name: SourceProfile, skills: make(map[string]float64, len(p.Skills))}
	for _, s := range p.Skills {
		key := vocab.SkillKey(s.Name)
		if key == "" {
			continue
		}
		bonus := profileSkillBonus(s)
		if prev, ok := src.skills[key]; !ok || bonus > prev {
			src.skills[key] = bonus
		}
	}
	for _, e := range p.Education {
		src.education = append(src.education, e.Degree)
	}
	for _, e := range p.Experience {
		src.experience = append(src.experience, experienceEntry{
			title: e.Title, start: e.StartDate, end: e.EndDate, skills: e.Skills,
		})
	}
	return src
}

// profileSkillBonus is min(years, 3) when years are recorded, otherwise
// min(proficiency/3, 3) when proficiency is recorded, otherwise 0
func profileSkillBonus(s types.ProfileSkill) float64 {
	switch {
	case s.YearsOfExperience != nil:
		return math.Max(0, math.Min(*s.YearsOfExperience, maxSkillBonus))
	case s.Proficiency != nil:
		return math.Max(0, math.Min(*s.Proficiency/3, maxSkillBonus))
	}
	return 0
}

// firstEducation returns the degree texts of the first source that has any
func firstEducation(sources []evidenceSource) []string {
	for _, src := range sources {
		if len(src.education) > 0 {
			return src.education
		}
	}
	return nil
}

// firstExperience returns the entries of the first source that has any
func firstExperience(sources []evidenceSource) []experienceEntry {
	for _, src := range sources {
		if len(src.experience) > 0 {
			return src.experience
		}
	}
	return nil
}
