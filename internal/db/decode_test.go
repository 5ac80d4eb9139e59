package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestDecodeJobSkills(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []types.JobSkill
	}{
		{"object layout", `[{"name":"Go"},{"name":"SQL"}]`, []types.JobSkill{{Name: "Go"}, {Name: "SQL"}}},
		{"string layout", `["Go","SQL"]`, []types.JobSkill{{Name: "Go"}, {Name: "SQL"}}},
		{"empty array", `[]`, []types.JobSkill{}},
		{"missing", ``, []types.JobSkill{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var job types.Job
			require.NoError(t, decodeJobSkills([]byte(tt.data), &job))
			assert.Equal(t, tt.want, job.Skills)
		})
	}

	t.Run("malformed", func(t *testing.T) {
		var job types.Job
		assert.Error(t, decodeJobSkills([]byte(`{"name":1}`), &job))
	})
}

func TestDecodeProfile(t *testing.T) {
	id := uuid.New()
	row := profileRow{
		ID:         id,
		Skills:     []byte(`[{"name":"Go","yearsOfExperience":4}]`),
		Education:  []byte(`[{"institution":"MIT","degree":"Bachelor of Science"}]`),
		Experience: []byte(`[{"title":"Engineer","startDate":"2020-01"}]`),
	}

	p, err := decodeProfile(row, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	require.Len(t, p.Skills, 1)
	assert.Equal(t, "Go", p.Skills[0].Name)
	require.NotNil(t, p.Skills[0].YearsOfExperience)
	assert.InDelta(t, 4.0, *p.Skills[0].YearsOfExperience, 1e-9)
	assert.Equal(t, "Bachelor of Science", p.Education[0].Degree)
	assert.Equal(t, "2020-01", *p.Experience[0].StartDate)
	assert.Nil(t, p.ParsedResumeData)

	row.Skills = []byte(`not json`)
	_, err = decodeProfile(row, zap.NewNop())
	assert.ErrorContains(t, err, "failed to decode skills")
}

func TestDecodeParsedResume(t *testing.T) {
	id := uuid.New()

	t.Run("valid blob", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		data := []byte(`{"fullName":"Jane Doe","contact":{"email":"jane@example.com"},
			"skills":["Go"],"experience":[{"title":"Engineer","startDate":"2021-03","endDate":null}],
			"education":[],"fullText":"Jane Doe"}`)

		parsed := decodeParsedResume(id, data, zap.New(core))
		require.NotNil(t, parsed)
		assert.Equal(t, "Jane Doe", parsed.FullName)
		assert.Equal(t, []string{"Go"}, parsed.Skills)
		assert.Equal(t, []string{}, parsed.Experience[0].Skills)
		assert.Zero(t, logs.Len())
	})

	t.Run("missing or null", func(t *testing.T) {
		assert.Nil(t, decodeParsedResume(id, nil, zap.NewNop()))
		assert.Nil(t, decodeParsedResume(id, []byte("null"), zap.NewNop()))
	})

	t.Run("schema violation is ignored and logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		data := []byte(`{"contact":{},"skills":"Go","experience":[],"education":[]}`)

		assert.Nil(t, decodeParsedResume(id, data, zap.New(core)))
		entries := logs.FilterMessage("ignoring invalid parsed resume data").All()
		require.Len(t, entries, 1)
		assert.Equal(t, id.String(), entries[0].ContextMap()["student_profile_id"])
	})

	t.Run("malformed json is ignored", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		assert.Nil(t, decodeParsedResume(id, []byte(`{"skills":`), zap.New(core)))
		assert.Equal(t, 1, logs.Len())
	})
}
