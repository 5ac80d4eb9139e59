package types

// ScoringWeights are the relative weights of the four score dimensions.
// They must sum to 1.0 for the overall score to stay on the 0-100 scale.
type ScoringWeights struct {
	Skills             float64 `json:"skills" mapstructure:"skills" validate:"gte=0,lte=1"`
	Education          float64 `json:"education" mapstructure:"education" validate:"gte=0,lte=1"`
	Experience         float64 `json:"experience" mapstructure:"experience" validate:"gte=0,lte=1"`
	ApplicationQuality float64 `json:"applicationQuality" mapstructure:"application_quality" validate:"gte=0,lte=1"`
}

// Sum returns the total of all weights
func (w ScoringWeights) Sum() float64 {
	return w.Skills + w.Education + w.Experience + w.ApplicationQuality
}

// ScoreBreakdown holds the per-dimension sub-scores, each in [0,100]
type ScoreBreakdown struct {
	Skills             int `json:"skills"`
	Education          int `json:"education"`
	Experience         int `json:"experience"`
	ApplicationQuality int `json:"applicationQuality"`
}

// CandidateScore is the weighted match score of a candidate against a job
type CandidateScore struct {
	OverallScore int            `json:"overallScore"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
}
