package types

import "github.com/google/uuid"

// ExperienceLevel is the seniority a job posting asks for
type ExperienceLevel string

// Experience levels, from least to most senior
const (
	LevelEntry  ExperienceLevel = "entry"
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
	LevelLead   ExperienceLevel = "lead"
)

// Valid reports whether the level is one of the known levels or unset
func (l ExperienceLevel) Valid() bool {
	switch l {
	case "", LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelLead:
		return true
	}
	return false
}

// JobSkill is a skill required by a job posting
type JobSkill struct {
	Name string `json:"name"`
}

// Job is a job posting as loaded from the caller's store. It is read-only to this system.
type Job struct {
	ID                 uuid.UUID       `json:"id,omitempty"`
	Title              string          `json:"title"`
	Skills             []JobSkill      `json:"skills"`
	RequiredEducation  []string        `json:"requiredEducation,omitempty"`
	PreferredEducation []string        `json:"preferredEducation,omitempty"`
	ExperienceLevel    ExperienceLevel `json:"experienceLevel,omitempty"`
}

// SkillNames returns the names of the job's required skills
func (j *Job) SkillNames() []string {
	names := make([]string, 0, len(j.Skills))
	for _, s := range j.Skills {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}

// Application is a candidate's application to a job
type Application struct {
	ID          uuid.UUID `json:"id,omitempty"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	ResumeURL   string    `json:"resumeUrl,omitempty"`
}

// HasResume reports whether a résumé file is attached to the application
func (a *Application) HasResume() bool {
	return a != nil && a.ResumeURL != ""
}
