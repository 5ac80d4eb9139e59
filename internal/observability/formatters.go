// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most limit runes, marking the cut with "..."
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.ExtractedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(profile.FullName)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(profile.Contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(profile.Contact.Phone)))
	if profile.Contact.LinkedInURL != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", profile.Contact.LinkedInURL))
	}
	if profile.Contact.PersonalWebsite != "" {
		sb.WriteString(fmt.Sprintf("Website:  %s\n", profile.Contact.PersonalWebsite))
	}
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(profile.Skills)))
		count := min(len(profile.Skills), maxItemsToShow*2)
		sb.WriteString(fmt.Sprintf("  %s", strings.Join(profile.Skills[:count], ", ")))
		if len(profile.Skills) > count {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(profile.Skills)-count))
		}
		sb.WriteString("\n\n")
	}

	if len(profile.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", orDash(e.Title)))
			if e.Company != "" {
				sb.WriteString(fmt.Sprintf(" at %s", e.Company))
			}
			sb.WriteString("\n")
			if e.StartDate != nil {
				end := "present"
				if e.EndDate != nil {
					end = *e.EndDate
				}
				sb.WriteString(fmt.Sprintf("    %s to %s\n", *e.StartDate, end))
			}
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(profile.Education), 3)
		for i := 0; i < count; i++ {
			e := profile.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", orDash(e.Degree)))
			if e.FieldOfStudy != "" {
				sb.WriteString(fmt.Sprintf(" in %s", e.FieldOfStudy))
			}
			sb.WriteString("\n")
			details := []string{}
			if e.Institution != "" {
				details = append(details, e.Institution)
			}
			if e.GraduationYear != nil {
				details = append(details, fmt.Sprintf("%d", *e.GraduationYear))
			}
			if e.GPA != nil {
				details = append(details, fmt.Sprintf("GPA %.2f", *e.GPA))
			}
			if len(details) > 0 {
				sb.WriteString(fmt.Sprintf("    %s\n", strings.Join(details, ", ")))
			}
		}
		if len(profile.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Education)-3))
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSpace(sb.String()))
}

// PrintFailures outputs the extractors that failed while building a profile.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFailures(failures []error) {
	if len(failures) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL EXTRACTORS SUCCEEDED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d extractors failed:\n\n", len(failures)))
	for i, f := range failures {
		sb.WriteString(fmt.Sprintf("⚠ %s", f.Error()))
		if i < len(failures)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EXTRACTION FAILURES", sb.String())
}

// bar renders a 0-100 score as a 20-cell bar
func bar(score int) string {
	filled := max(0, min(score, 100)) / 5
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

// PrintScore outputs the weighted score and its per-dimension breakdown.
func (p *Printer) PrintScore(jobTitle string, score types.CandidateScore, weights types.ScoringWeights) {
	var sb strings.Builder
	if jobTitle != "" {
		sb.WriteString(fmt.Sprintf("Job:      %s\n\n", jobTitle))
	}
	sb.WriteString(fmt.Sprintf("Overall      %s %3d\n\n", bar(score.OverallScore), score.OverallScore))

	rows := []struct {
		label  string
		score  int
		weight float64
	}{
		{"Skills", score.Breakdown.Skills, weights.Skills},
		{"Education", score.Breakdown.Education, weights.Education},
		{"Experience", score.Breakdown.Experience, weights.Experience},
		{"Application", score.Breakdown.ApplicationQuality, weights.ApplicationQuality},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-12s %s %3d  x%.2f\n", r.label, bar(r.score), r.score, r.weight))
	}

	p.printBox("CANDIDATE SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked candidates with scores and notes.
func (p *Printer) PrintRanking(ranked *types.RankedCandidates) {
	if ranked == nil || len(ranked.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	if ranked.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Job: %s\n", ranked.JobTitle))
	}
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(ranked.Ranked)))

	count := min(len(ranked.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := ranked.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", c.Rank, c.CandidateID))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", c.Score.OverallScore))
		if c.Notes != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", c.Notes))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked.Ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}
