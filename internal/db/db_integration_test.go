//go:build integration

package db

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.EnsureSchema(ctx))
	return db
}

func insertJob(t *testing.T, db *DB, title, skills, level string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.pool.QueryRow(context.Background(),
		`INSERT INTO jobs (title, skills, required_education, preferred_education, experience_level)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		title, skills, []string{"Bachelor's degree"}, []string{"Master's degree"}, level,
	).Scan(&id)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.pool.Exec(context.Background(), "DELETE FROM jobs WHERE id = $1", id)
	})
	return id
}

func insertProfile(t *testing.T, db *DB, parsed []byte) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.pool.QueryRow(context.Background(),
		`INSERT INTO student_profiles (skills, parsed_resume_data) VALUES ($1, $2) RETURNING id`,
		`[{"name":"Go","proficiency":6}]`, parsed,
	).Scan(&id)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.pool.Exec(context.Background(), "DELETE FROM student_profiles WHERE id = $1", id)
	})
	return id
}

func TestIntegration_GetJob(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	id := insertJob(t, db, "Backend Engineer", `[{"name":"Go"},{"name":"PostgreSQL"}]`, "mid")

	job, err := db.GetJob(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, job.SkillNames())
	assert.Equal(t, []string{"Bachelor's degree"}, job.RequiredEducation)
	assert.Equal(t, types.LevelMid, job.ExperienceLevel)

	missing, err := db.GetJob(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIntegration_StudentProfile(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	t.Run("invalid parsed data is ignored", func(t *testing.T) {
		id := insertProfile(t, db, []byte(`{"skills":42}`))

		p, err := db.GetStudentProfile(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Nil(t, p.ParsedResumeData)
		assert.Equal(t, "Go", p.Skills[0].Name)
	})

	t.Run("save then load parsed resume", func(t *testing.T) {
		id := insertProfile(t, db, nil)

		parsed := types.NewExtractedProfile()
		parsed.FullName = "Jane Doe"
		parsed.Skills = []string{"Go", "Docker"}
		require.NoError(t, db.SaveParsedResume(ctx, id, parsed))

		p, err := db.GetStudentProfile(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, p.ParsedResumeData)
		assert.Equal(t, "Jane Doe", p.ParsedResumeData.FullName)
		assert.Equal(t, []string{"Go", "Docker"}, p.ParsedResumeData.Skills)
	})

	t.Run("save to unknown profile", func(t *testing.T) {
		err := db.SaveParsedResume(ctx, uuid.New(), types.NewExtractedProfile())
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestIntegration_Applications(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	jobID := insertJob(t, db, "Data Engineer", `["Python"]`, "junior")
	first := insertProfile(t, db, nil)
	second := insertProfile(t, db, nil)

	var appID uuid.UUID
	require.NoError(t, db.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, student_profile_id, cover_letter, resume_url)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		jobID, first, "I love data engineering.", "https://files.example.com/r.pdf",
	).Scan(&appID))
	_, err := db.pool.Exec(ctx,
		`INSERT INTO applications (job_id, student_profile_id) VALUES ($1, $2)`, jobID, second)
	require.NoError(t, err)

	rec, err := db.GetApplication(ctx, appID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, first, rec.StudentProfileID)
	assert.True(t, rec.Application.HasResume())

	records, err := db.ListApplicationsForJob(ctx, jobID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second, records[1].StudentProfileID)
	assert.False(t, records[1].Application.HasResume())
}
