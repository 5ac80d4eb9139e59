package types

// RankedCandidates is the result of scoring many candidates against one job,
// ordered by overall score, best first
type RankedCandidates struct {
	JobTitle string            `json:"jobTitle"`
	Ranked   []RankedCandidate `json:"ranked"`
}

// RankedCandidate is one candidate's position and score in a ranking
type RankedCandidate struct {
	CandidateID string         `json:"candidateId"`
	Rank        int            `json:"rank"`
	Score       CandidateScore `json:"score"`
	Notes       string         `json:"notes"`
}
