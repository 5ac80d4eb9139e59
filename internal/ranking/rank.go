// Package ranking scores many candidates against one job and orders them.
package ranking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultConcurrency bounds parallel scoring when the caller gives no limit
const DefaultConcurrency = 4

// Candidate is one applicant to rank
type Candidate struct {
	ID          string                `json:"id"`
	Profile     *types.StudentProfile `json:"profile"`
	Application *types.Application    `json:"application,omitempty"`
}

// RankCandidates scores every candidate against job with at most concurrency
// scorers running at once, then sorts by overall score (descending). Candidates
// with equal scores keep their input order.
func RankCandidates(
	ctx context.Context,
	engine *scoring.Engine,
	job *types.Job,
	candidates []Candidate,
	concurrency int,
) (*types.RankedCandidates, error) {
	if engine == nil {
		return nil, errors.New("scoring engine is required")
	}
	if job == nil {
		return nil, errors.New("job is required")
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	scores := make([]types.CandidateScore, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, c := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			// each goroutine writes only its own index
			scores[i] = engine.Score(c.Profile, job, c.Application)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking cancelled: %w", err)
	}

	ranked := make([]types.RankedCandidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = types.RankedCandidate{
			CandidateID: c.ID,
			Score:       scores[i],
			Notes:       generateNotes(scores[i]),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.OverallScore > ranked[j].Score.OverallScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return &types.RankedCandidates{JobTitle: job.Title, Ranked: ranked}, nil
}

type dimension struct {
	name  string
	score int
}

// generateNotes creates a brief explanation of a candidate's score.
func generateNotes(score types.CandidateScore) string {
	var parts []string

	switch {
	case score.OverallScore >= 75:
		parts = append(parts, "Strong match")
	case score.OverallScore >= 50:
		parts = append(parts, "Moderate match")
	case score.OverallScore > 0:
		parts = append(parts, "Weak match")
	default:
		parts = append(parts, "No match")
	}

	dims := []dimension{
		{"skills", score.Breakdown.Skills},
		{"education", score.Breakdown.Education},
		{"experience", score.Breakdown.Experience},
		{"application quality", score.Breakdown.ApplicationQuality},
	}
	strongest, weakest := dims[0], dims[0]
	for _, d := range dims[1:] {
		if d.score > strongest.score {
			strongest = d
		}
		if d.score < weakest.score {
			weakest = d
		}
	}

	if strongest.score > 0 {
		parts = append(parts, fmt.Sprintf("Strongest: %s (%d)", strongest.name, strongest.score))
	}
	if weakest.name != strongest.name {
		parts = append(parts, fmt.Sprintf("Weakest: %s (%d)", weakest.name, weakest.score))
	}

	return strings.Join(parts, ". ")
}
