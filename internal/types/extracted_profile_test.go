package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtractedProfile_EmptyCollectionsSerialize(t *testing.T) {
	p := NewExtractedProfile()

	jsonBytes, err := json.Marshal(p)
	require.NoError(t, err)

	out := string(jsonBytes)
	assert.Contains(t, out, `"skills":[]`)
	assert.Contains(t, out, `"experience":[]`)
	assert.Contains(t, out, `"education":[]`)
	assert.Contains(t, out, `"contact":{}`)
	assert.Contains(t, out, `"fullText":""`)
	assert.NotContains(t, out, "null")
}

func TestExtractedProfile_Normalize(t *testing.T) {
	p := &ExtractedProfile{
		Experience: []ExtractedExperience{{Title: "Engineer"}},
	}

	p.Normalize()

	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Experience[0].Skills)
}

func TestExtractedExperience_OngoingSerializesNullEnd(t *testing.T) {
	start := "2021-03"
	exp := ExtractedExperience{Title: "Engineer", StartDate: &start, Skills: []string{"Go"}}

	jsonBytes, err := json.Marshal(exp)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"startDate":"2021-03"`)
	assert.Contains(t, string(jsonBytes), `"endDate":null`)
}

func TestExtractedProfile_JSONUnmarshaling(t *testing.T) {
	input := `{
		"fullName": "Jane Doe",
		"contact": {"email": "jane@example.com", "linkedInUrl": "https://www.linkedin.com/in/janedoe"},
		"skills": ["Python", "SQL"],
		"experience": [{"title": "Data Engineer", "company": "Acme", "startDate": "2019-01", "endDate": "2022-06", "skills": ["Python"]}],
		"education": [{"institution": "State University", "degree": "Bachelor of Science", "graduationYear": 2018, "gpa": 3.7}],
		"fullText": "..."
	}`

	var p ExtractedProfile
	require.NoError(t, json.Unmarshal([]byte(input), &p))

	assert.Equal(t, "Jane Doe", p.FullName)
	assert.Equal(t, "jane@example.com", p.Contact.Email)
	assert.False(t, p.Contact.IsEmpty())
	assert.Equal(t, []string{"Python", "SQL"}, p.Skills)
	require.Len(t, p.Experience, 1)
	require.NotNil(t, p.Experience[0].EndDate)
	assert.Equal(t, "2022-06", *p.Experience[0].EndDate)
	require.Len(t, p.Education, 1)
	require.NotNil(t, p.Education[0].GraduationYear)
	assert.Equal(t, 2018, *p.Education[0].GraduationYear)
	require.NotNil(t, p.Education[0].GPA)
	assert.InDelta(t, 3.7, *p.Education[0].GPA, 0.001)
}

func TestExtractedContact_IsEmpty(t *testing.T) {
	assert.True(t, ExtractedContact{}.IsEmpty())
	assert.False(t, ExtractedContact{Phone: "555-123-4567"}.IsEmpty())
}
