package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	applicationBase      = 50
	titleMentionPoints   = 10
	skillMentionPoints   = 3
	maxSkillMentionBonus = 15
	resumeAttachedPoints = 10
)

// coverLetterTiers award points for cover letter length; the highest tier reached counts
var coverLetterTiers = []struct {
	minChars int // exclusive
	points   int
}{
	{1500, 25},
	{800, 20},
	{400, 15},
	{200, 10},
	{0, 5},
}

// ScoreApplication rates the effort visible in an application. No application scores 0.
func (e *Engine) ScoreApplication(app *types.Application, job *types.Job) int {
	if app == nil {
		return 0
	}

	score := applicationBase
	letter := strings.TrimSpace(app.CoverLetter)
	length := utf8.RuneCountInString(letter)
	for _, tier := range coverLetterTiers {
		if length > tier.minChars {
			score += tier.points
			break
		}
	}

	if job != nil && letter != "" {
		lower := strings.ToLower(letter)
		if title := strings.ToLower(strings.TrimSpace(job.Title)); title != "" && strings.Contains(lower, title) {
			score += titleMentionPoints
		}

		bonus := 0
		for _, name := range job.SkillNames() {
			if containsTerm(lower, strings.ToLower(strings.TrimSpace(name))) {
				bonus += skillMentionPoints
			}
		}
		score += min(bonus, maxSkillMentionBonus)
	}

	if app.HasResume() {
		score += resumeAttachedPoints
	}
	return clamp(score)
}

// containsTerm reports whether term occurs in text with no letter or digit
// directly before or after it, so "go" is not found in "good"
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	for offset := 0; offset < len(text); {
		i := strings.Index(text[offset:], term)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(term)
		if !isWordRune(lastRune(text[:start])) && !isWordRune(firstRune(text[end:])) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func firstRune(s string) rune {
	if s == "" {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	if s == "" {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
