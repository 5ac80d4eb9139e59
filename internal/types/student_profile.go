package types

import "github.com/google/uuid"

// ProfileSkill is a manually maintained skill on a student profile
type ProfileSkill struct {
	Name              string   `json:"name"`
	YearsOfExperience *float64 `json:"yearsOfExperience,omitempty"`
	Proficiency       *float64 `json:"proficiency,omitempty"` // 1-10
}

// ProfileEducation is a manually maintained education entry
type ProfileEducation struct {
	Institution    string `json:"institution,omitempty"`
	Degree         string `json:"degree,omitempty"`
	FieldOfStudy   string `json:"fieldOfStudy,omitempty"`
	GraduationYear *int   `json:"graduationYear,omitempty"`
}

// ProfileExperience is a manually maintained experience entry.
// Dates use the "YYYY-MM" layout; nil EndDate means current.
type ProfileExperience struct {
	Title     string   `json:"title,omitempty"`
	Company   string   `json:"company,omitempty"`
	StartDate *string  `json:"startDate,omitempty"`
	EndDate   *string  `json:"endDate,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// StudentProfile is a candidate profile as loaded from the caller's store.
// ParsedResumeData, when present, is preferred over the structured fields during scoring.
type StudentProfile struct {
	ID               uuid.UUID           `json:"id,omitempty"`
	Skills           []ProfileSkill      `json:"skills,omitempty"`
	Education        []ProfileEducation  `json:"education,omitempty"`
	Experience       []ProfileExperience `json:"experience,omitempty"`
	ParsedResumeData *ExtractedProfile   `json:"parsedResumeData,omitempty"`
}
