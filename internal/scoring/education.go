package scoring

import (
	"regexp"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Education levels, lowest first. Zero means unrecognised.
const (
	levelNone = iota
	levelHighSchool
	levelAssociate
	levelBachelor
	levelMaster
	levelDoctorate
)

const (
	requiredEducationPoints  = 70
	preferredEducationPoints = 30
	neutralEducationScore    = 50
)

// degreeLadder is checked from the highest level down
var degreeLadder = []struct {
	level   int
	pattern *regexp.Regexp
}{
	{levelDoctorate, regexp.MustCompile(`(?i)\b(?:doctorate|doctoral|doctor|ph\.?\s?d|d\.?phil|ed\.?d)\b`)},
	{levelMaster, regexp.MustCompile(`(?i)\b(?:masters?|master's|mba|m\.?sc|m\.?s\.?|msc|m\.?a\.?|m\.?tech|m\.e\.?|meng)\b`)},
	{levelBachelor, regexp.MustCompile(`(?i)\b(?:bachelors?|bachelor's|undergraduate|b\.?sc|b\.?s\.?|bsc|b\.?a\.?|b\.?tech|b\.e\.?|beng)\b`)},
	{levelAssociate, regexp.MustCompile(`(?i)\b(?:associates?|associate's|a\.a\.?|a\.s\.?)\b`)},
	{levelHighSchool, regexp.MustCompile(`(?i)\b(?:high\s+school|secondary\s+school|ged|diploma)\b`)},
}

// EducationLevel maps degree text onto the ladder
// [high school, associate, bachelor, master, doctorate]; 0 when nothing matches
func EducationLevel(degree string) int {
	for _, rung := range degreeLadder {
		if rung.pattern.MatchString(degree) {
			return rung.level
		}
	}
	return levelNone
}

// ScoreEducation compares the candidate's highest level, taken from the first
// source with education entries, against the job's required and preferred levels
func (e *Engine) ScoreEducation(profile *types.StudentProfile, job *types.Job) int {
	if profile == nil || job == nil {
		return 0
	}
	return scoreEducation(firstEducation(evidenceSources(profile, e.vocab)), job)
}

func scoreEducation(degrees []string, job *types.Job) int {
	if len(degrees) == 0 {
		return 0
	}

	level := levelNone
	for _, d := range degrees {
		level = max(level, EducationLevel(d))
	}

	required, hasRequired := minLevel(job.RequiredEducation)
	preferred, hasPreferred := minLevel(job.PreferredEducation)

	if !hasRequired && !hasPreferred {
		return neutralEducationScore
	}

	// the preferred bonus sits on top of a met requirement, never in place of it
	if hasRequired && level < required || level == levelNone {
		return 0
	}
	score := requiredEducationPoints
	if hasPreferred && level >= preferred {
		score += preferredEducationPoints
	}
	return clamp(score)
}

// minLevel returns the lowest recognised level in levels. Unrecognised entries are ignored.
func minLevel(levels []string) (int, bool) {
	lowest := 0
	for _, l := range levels {
		lvl := EducationLevel(l)
		if lvl == levelNone {
			continue
		}
		if lowest == 0 || lvl < lowest {
			lowest = lvl
		}
	}
	return lowest, lowest != 0
}
