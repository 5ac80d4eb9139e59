package scoring

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// DefaultThresholdMonths applies when a job declares no experience level
const DefaultThresholdMonths = 24

// levelThresholds maps experience levels to the months of relevant experience they ask for
var levelThresholds = map[types.ExperienceLevel]float64{
	types.LevelEntry:  0,
	types.LevelJunior: 12,
	types.LevelMid:    36,
	types.LevelSenior: 60,
	types.LevelLead:   96,
}

const (
	baseRelevance      = 0.5
	titleRelevance     = 0.25
	maxSkillRelevance  = 0.25
	minTitleWordLength = 4
)

var dateLayouts = []string{"2006-01", "2006-01-02", "2006/01", "01/2006", "2006"}

// ThresholdMonths returns the months of experience expected for a level
func ThresholdMonths(level types.ExperienceLevel) float64 {
	if t, ok := levelThresholds[level]; ok {
		return t
	}
	return DefaultThresholdMonths
}

// ScoreExperience sums entry durations weighted by relevance to the job and
// maps the total onto the job level's threshold. Open-ended entries run to the
// engine clock.
func (e *Engine) ScoreExperience(profile *types.StudentProfile, job *types.Job) int {
	if profile == nil || job == nil {
		return 0
	}
	entries := firstExperience(evidenceSources(profile, e.vocab))
	months := relevantMonths(entries, job, e.jobSkillKeys(job), e.vocab, e.now())
	return scoreExperienceMonths(months, ThresholdMonths(job.ExperienceLevel))
}

func relevantMonths(
	entries []experienceEntry,
	job *types.Job,
	jobSkills []string,
	vocab *vocabulary.Vocabulary,
	now time.Time,
) float64 {
	jobWords := titleWords(job.Title)
	total := 0.0
	for _, entry := range entries {
		months := durationMonths(entry.start, entry.end, now)
		if months <= 0 {
			continue
		}
		total += months * relevanceFactor(entry, jobWords, jobSkills, vocab)
	}
	return total
}

// relevanceFactor is 0.5, plus 0.25 when the titles share a word of four or
// more letters, plus up to 0.25 for the share of job skills used in the entry
func relevanceFactor(entry experienceEntry, jobWords map[string]struct{}, jobSkills []string, vocab *vocabulary.Vocabulary) float64 {
	factor := baseRelevance

	for w := range titleWords(entry.title) {
		if _, ok := jobWords[w]; ok {
			factor += titleRelevance
			break
		}
	}

	if len(jobSkills) > 0 {
		have := make(map[string]struct{}, len(entry.skills))
		for _, s := range entry.skills {
			have[vocab.SkillKey(s)] = struct{}{}
		}
		overlap := 0
		for _, key := range jobSkills {
			if _, ok := have[key]; ok {
				overlap++
			}
		}
		factor += maxSkillRelevance * float64(overlap) / float64(len(jobSkills))
	}
	return factor
}

func titleWords(title string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if utf8.RuneCountInString(w) >= minTitleWordLength {
			words[w] = struct{}{}
		}
	}
	return words
}

// durationMonths counts whole months from start to end, or to now when end is
// nil. An unparseable start counts as zero.
func durationMonths(start, end *string, now time.Time) float64 {
	if start == nil {
		return 0
	}
	from, ok := parseDate(*start)
	if !ok {
		return 0
	}

	to := now
	if end != nil {
		parsed, ok := parseDate(*end)
		if !ok {
			return 0
		}
		to = parsed
	}

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 0 {
		return 0
	}
	return float64(months)
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// scoreExperienceMonths maps relevant months onto a 0-100 score against threshold t:
// 100 at 1.5t or more, 80 to 100 between t and 1.5t, 0 to 70 below t.
// Entry-level jobs (t = 0) score 70 for any relevant experience.
func scoreExperienceMonths(months, threshold float64) int {
	switch {
	case months <= 0:
		return 0
	case threshold <= 0:
		return 70
	case months >= 1.5*threshold:
		return 100
	case months >= threshold:
		return toScore(80 + 20*(months-threshold)/(0.5*threshold))
	default:
		return toScore(70 * months / threshold)
	}
}
