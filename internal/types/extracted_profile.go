// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Format is the declared type of an uploaded résumé document
type Format string

// Supported document formats
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// RawDocument is an uploaded document held in memory for the duration of one extraction
type RawDocument struct {
	Data   []byte
	Format Format
}

// ExtractedContact holds contact details found anywhere in the document.
// Empty strings mean the field was not found.
type ExtractedContact struct {
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	LinkedInURL     string `json:"linkedInUrl,omitempty"`
	PersonalWebsite string `json:"personalWebsite,omitempty"`
}

// IsEmpty reports whether no contact field was found
func (c ExtractedContact) IsEmpty() bool {
	return c.Email == "" && c.Phone == "" && c.LinkedInURL == "" && c.PersonalWebsite == ""
}

// ExtractedEducation is one education entry, in document order
type ExtractedEducation struct {
	Institution    string   `json:"institution,omitempty"`
	Degree         string   `json:"degree,omitempty"`
	FieldOfStudy   string   `json:"fieldOfStudy,omitempty"`
	GraduationYear *int     `json:"graduationYear,omitempty"` // 1950-2030
	GPA            *float64 `json:"gpa,omitempty"`
}

// ExtractedExperience is one experience entry, in document order.
// Dates use the "YYYY-MM" layout; a nil EndDate with a StartDate means the role is ongoing.
type ExtractedExperience struct {
	Title     string   `json:"title,omitempty"`
	Company   string   `json:"company,omitempty"`
	StartDate *string  `json:"startDate,omitempty"`
	EndDate   *string  `json:"endDate"`
	Skills    []string `json:"skills"`
}

// ExtractedProfile is the structured candidate profile produced from a résumé
type ExtractedProfile struct {
	FullName   string                `json:"fullName,omitempty"`
	Contact    ExtractedContact      `json:"contact"`
	Skills     []string              `json:"skills"`
	Experience []ExtractedExperience `json:"experience"`
	Education  []ExtractedEducation  `json:"education"`
	// FullText is retained for audit and debugging; nothing downstream parses it again.
	FullText string `json:"fullText"`
}

// NewExtractedProfile returns a profile with every collection initialised,
// so that a profile with no findings still serialises with all keys present.
func NewExtractedProfile() *ExtractedProfile {
	return &ExtractedProfile{
		Skills:     []string{},
		Experience: []ExtractedExperience{},
		Education:  []ExtractedEducation{},
	}
}

// Normalize replaces nil collections with empty ones
func (p *ExtractedProfile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []ExtractedExperience{}
	}
	if p.Education == nil {
		p.Education = []ExtractedEducation{}
	}
	for i := range p.Experience {
		if p.Experience[i].Skills == nil {
			p.Experience[i].Skills = []string{}
		}
	}
}
