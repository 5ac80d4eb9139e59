// Package schemas holds the JSON Schemas for the artifacts read and written by resume-matcher.
package schemas

import "embed"

// Files contains every *.schema.json file in this directory
//
//go:embed *.schema.json
var Files embed.FS

// Schema names, the file name without ".schema.json"
const (
	ExtractedProfile = "extracted_profile"
	CandidateScore   = "candidate_score"
	Job              = "job"
	StudentProfile   = "student_profile"
	RankedCandidates = "ranked_candidates"
	Application      = "application"
)

// Names lists the available schemas
var Names = []string{ExtractedProfile, CandidateScore, Job, StudentProfile, RankedCandidates, Application}

// FileName returns the file holding the named schema
func FileName(name string) string {
	return name + ".schema.json"
}
