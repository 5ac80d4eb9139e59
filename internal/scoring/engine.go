// Package scoring rates how well a candidate profile matches a job on four
// dimensions and combines them into one weighted 0-100 score.
package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// weightSumTolerance is the allowed distance of the weight sum from 1.0
const weightSumTolerance = 1e-6

var validate = validator.New()

// DefaultWeights returns skills 0.5, education 0.2, experience 0.2, application quality 0.1
func DefaultWeights() types.ScoringWeights {
	return types.ScoringWeights{
		Skills:             0.5,
		Education:          0.2,
		Experience:         0.2,
		ApplicationQuality: 0.1,
	}
}

// ValidateWeights checks that every weight is in [0,1] and that they sum to 1.0
func ValidateWeights(w types.ScoringWeights) error {
	desc := fmt.Sprintf("{skills: %g, education: %g, experience: %g, applicationQuality: %g}",
		w.Skills, w.Education, w.Experience, w.ApplicationQuality)

	if err := validate.Struct(w); err != nil {
		return &WeightsError{Weights: desc, Message: "each weight must be between 0 and 1", Cause: err}
	}
	if math.Abs(w.Sum()-1.0) > weightSumTolerance {
		return &WeightsError{Weights: desc, Message: fmt.Sprintf("weights sum to %g, expected 1.0", w.Sum())}
	}
	return nil
}

// Engine scores candidates against jobs. It holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	weights types.ScoringWeights
	vocab   *vocabulary.Vocabulary
	// Now closes open-ended experience entries; time.Now when nil
	Now func() time.Time
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithVocabulary sets the vocabulary used to compare skill names
func WithVocabulary(v *vocabulary.Vocabulary) EngineOption {
	return func(e *Engine) { e.vocab = v }
}

// WithClock sets the clock used for ongoing experience
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.Now = now }
}

// NewEngine validates weights and creates an Engine
func NewEngine(weights types.ScoringWeights, opts ...EngineOption) (*Engine, error) {
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}

	e := &Engine{weights: weights}
	for _, opt := range opts {
		opt(e)
	}
	if e.vocab == nil {
		e.vocab = vocabulary.Default()
	}
	return e, nil
}

// Weights returns the engine's weights
func (e *Engine) Weights() types.ScoringWeights {
	return e.weights
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Score computes the four sub-scores and their weighted total. A nil profile or
// job yields an all-zero score; a nil application only zeroes application quality.
func (e *Engine) Score(profile *types.StudentProfile, job *types.Job, app *types.Application) types.CandidateScore {
	if profile == nil || job == nil {
		return types.CandidateScore{}
	}

	b := types.ScoreBreakdown{
		Skills:             e.ScoreSkills(profile, job),
		Education:          e.ScoreEducation(profile, job),
		Experience:         e.ScoreExperience(profile, job),
		ApplicationQuality: e.ScoreApplication(app, job),
	}

	return types.CandidateScore{OverallScore: aggregate(b, e.weights), Breakdown: b}
}

// aggregate is the weighted sum of the sub-scores, rounded and clamped to [0,100]
func aggregate(b types.ScoreBreakdown, w types.ScoringWeights) int {
	overall := float64(b.Skills)*w.Skills +
		float64(b.Education)*w.Education +
		float64(b.Experience)*w.Experience +
		float64(b.ApplicationQuality)*w.ApplicationQuality
	return toScore(overall)
}

// toScore rounds half away from zero and clamps to [0,100]
func toScore(v float64) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 100:
		return 100
	}
	return int(math.Round(v))
}

func clamp(v int) int {
	return max(0, min(100, v))
}
