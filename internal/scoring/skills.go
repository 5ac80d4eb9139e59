package scoring

import (
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	skillMatchPoints = 7.0
	maxSkillPoints   = 10.0
)

// ScoreSkills awards up to 10 points per job skill: 7 for a match plus the
// bonus of the first source holding it. A job without skills scores 0.
func (e *Engine) ScoreSkills(profile *types.StudentProfile, job *types.Job) int {
	if profile == nil || job == nil {
		return 0
	}
	return scoreSkills(evidenceSources(profile, e.vocab), e.jobSkillKeys(job))
}

func scoreSkills(sources []evidenceSource, jobSkills []string) int {
	if len(jobSkills) == 0 {
		return 0
	}

	earned := 0.0
	for _, key := range jobSkills {
		for _, src := range sources {
			if bonus, ok := src.skills[key]; ok {
				earned += skillMatchPoints + bonus
				break
			}
		}
	}
	return toScore(100 * earned / (maxSkillPoints * float64(len(jobSkills))))
}

// jobSkillKeys returns the distinct comparison keys of the job's skills
func (e *Engine) jobSkillKeys(job *types.Job) []string {
	seen := make(map[string]struct{}, len(job.Skills))
	keys := make([]string, 0, len(job.Skills))
	for _, name := range job.SkillNames() {
		key := e.vocab.SkillKey(name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
