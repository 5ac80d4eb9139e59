package observability

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	start := "2020-01"
	year := 2019
	gpa := 3.85
	profile := &types.ExtractedProfile{
		FullName: "Jane Doe",
		Contact:  types.ExtractedContact{Email: "jane@example.com", LinkedInURL: "https://linkedin.com/in/janedoe"},
		Skills:   []string{"Go", "PostgreSQL", "Docker"},
		Experience: []types.ExtractedExperience{
			{Title: "Senior Engineer", Company: "Acme Corp", StartDate: &start},
		},
		Education: []types.ExtractedEducation{
			{Degree: "Master of Science", FieldOfStudy: "Computer Science", Institution: "MIT", GraduationYear: &year, GPA: &gpa},
		},
	}

	p.PrintProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED PROFILE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Phone:    -")
	assert.Contains(t, output, "LinkedIn: https://linkedin.com/in/janedoe")
	assert.Contains(t, output, "Go, PostgreSQL, Docker")
	assert.Contains(t, output, "Senior Engineer at Acme Corp")
	assert.Contains(t, output, "2020-01 to present")
	assert.Contains(t, output, "Master of Science in Computer Science")
	assert.Contains(t, output, "MIT, 2019, GPA 3.85")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintProfile_TruncatesSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := make([]string, 14)
	for i := range skills {
		skills[i] = fmt.Sprintf("S%d", i)
	}
	p.PrintProfile(&types.ExtractedProfile{Skills: skills})

	assert.Contains(t, buf.String(), "Skills (14):")
	assert.Contains(t, buf.String(), "... and 4 more")
}

func TestPrintFailures(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintFailures(nil)
		assert.Contains(t, buf.String(), "ALL EXTRACTORS SUCCEEDED")
	})

	t.Run("some", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintFailures([]error{errors.New("education: boom")})
		assert.Contains(t, buf.String(), "EXTRACTION FAILURES")
		assert.Contains(t, buf.String(), "1 extractors failed")
		assert.Contains(t, buf.String(), "education: boom")
	})
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := types.CandidateScore{
		OverallScore: 40,
		Breakdown:    types.ScoreBreakdown{Skills: 45, Experience: 87},
	}
	weights := types.ScoringWeights{Skills: 0.5, Education: 0.2, Experience: 0.2, ApplicationQuality: 0.1}
	p.PrintScore("Backend Python Engineer", score, weights)
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE SCORE")
	assert.Contains(t, output, "Backend Python Engineer")
	assert.Contains(t, output, strings.Repeat("█", 8)+strings.Repeat("░", 12)+"  40")
	assert.Contains(t, output, " 87  x0.20")
	assert.Contains(t, output, "  0  x0.10")
}

func TestBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", 20), bar(0))
	assert.Equal(t, strings.Repeat("█", 20), bar(100))
	assert.Equal(t, strings.Repeat("█", 20), bar(140))
	assert.Equal(t, strings.Repeat("░", 20), bar(-5))
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := &types.RankedCandidates{JobTitle: "Data Engineer"}
	for i := 0; i < 7; i++ {
		ranked.Ranked = append(ranked.Ranked, types.RankedCandidate{
			CandidateID: fmt.Sprintf("cand-%d", i+1),
			Rank:        i + 1,
			Score:       types.CandidateScore{OverallScore: 90 - i*10},
			Notes:       "Strong match",
		})
	}

	p.PrintRanking(ranked)
	output := buf.String()

	assert.Contains(t, output, "TOP RANKED CANDIDATES")
	assert.Contains(t, output, "Job: Data Engineer")
	assert.Contains(t, output, "#1  cand-1")
	assert.Contains(t, output, "Score: 90")
	assert.NotContains(t, output, "cand-6")
	assert.Contains(t, output, "... and 2 more candidates")
}

func TestPrintRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRanking(&types.RankedCandidates{})
	assert.Empty(t, buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "résum...", truncate("résumé text", 8))
}
