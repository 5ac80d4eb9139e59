package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

const educationSection = `Stanford University
Master of Science in Computer Science, 2018 - 2020
GPA: 3.85/4.0

University of Texas at Austin | 2014 - 2018
Bachelor's in Mathematics

- Dean's list`

func TestEducationExtractor_ExtractSection(t *testing.T) {
	e := NewEducationExtractor(vocabulary.Default())

	entries := e.ExtractSection(educationSection)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Stanford University", first.Institution)
	assert.Equal(t, "Master of Science", first.Degree)
	assert.Equal(t, "Computer Science", first.FieldOfStudy)
	require.NotNil(t, first.GraduationYear)
	assert.Equal(t, 2020, *first.GraduationYear)
	require.NotNil(t, first.GPA)
	assert.InDelta(t, 3.85, *first.GPA, 1e-9)

	second := entries[1]
	assert.Equal(t, "University of Texas at Austin", second.Institution)
	assert.Equal(t, "Bachelor's", second.Degree)
	assert.Equal(t, "Mathematics", second.FieldOfStudy)
	require.NotNil(t, second.GraduationYear)
	assert.Equal(t, 2018, *second.GraduationYear)
	assert.Nil(t, second.GPA)
}

func TestEducationExtractor_DegreeFirstBlock(t *testing.T) {
	e := NewEducationExtractor(vocabulary.Default())

	entries := e.ExtractSection("B.S. in Computer Science\nMIT\n2019")
	require.Len(t, entries, 1)
	assert.Equal(t, "MIT", entries[0].Institution)
	assert.Equal(t, "B.S.", entries[0].Degree)
	assert.Equal(t, "Computer Science", entries[0].FieldOfStudy)
}

func TestEducationExtractor_DegreeNames(t *testing.T) {
	e := NewEducationExtractor(vocabulary.Default())

	tests := []struct {
		line       string
		wantDegree string
		wantField  string
	}{
		{line: "Doctor of Philosophy", wantDegree: "Doctor of Philosophy"},
		{line: "Bachelor of Computer Science - Honours", wantDegree: "Bachelor", wantField: "Computer Science"},
		{line: "MBA, 2015", wantDegree: "MBA"},
		{line: "High School Diploma", wantDegree: "High School Diploma"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			degree, field, ok := e.matchDegree(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.wantDegree, degree)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestEducationExtractor_YearOutOfRange(t *testing.T) {
	e := NewEducationExtractor(vocabulary.Default())

	entries := e.ExtractSection("Community College\nAssociate degree, 1940")
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].GraduationYear)
	assert.Equal(t, "Community College", entries[0].Institution)
}

func TestEducationExtractor_NoSection(t *testing.T) {
	e := NewEducationExtractor(vocabulary.Default())

	entries, err := e.Extract(newTestDocument(t, "Jane Doe\nBachelor of Arts"))
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestEducationExtractor_YearsAlwaysInRange(t *testing.T) {
	e := NewEducationExtractor(vocabulary.Default())
	section := "Old School\n1900 1949 2031 2099\n\nNew School\nBachelor, 1950\n\nFuture School\n2030 2031"

	for _, entry := range e.ExtractSection(section) {
		if entry.GraduationYear != nil {
			assert.GreaterOrEqual(t, *entry.GraduationYear, 1950)
			assert.LessOrEqual(t, *entry.GraduationYear, 2030)
		}
	}
}
