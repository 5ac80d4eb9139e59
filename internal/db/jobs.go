package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// GetJob retrieves a job by ID. It returns nil, nil when no job exists.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	var (
		job        types.Job
		skillsJSON []byte
		level      string
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, skills, required_education, preferred_education, experience_level
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &skillsJSON, &job.RequiredEducation, &job.PreferredEducation, &level)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if err := decodeJobSkills(skillsJSON, &job); err != nil {
		return nil, err
	}
	job.ExperienceLevel = types.ExperienceLevel(level)
	if !job.ExperienceLevel.Valid() {
		db.logger.Warn("ignoring unknown experience level",
			zapJobID(job.ID), zapValue(level))
		job.ExperienceLevel = ""
	}
	return &job, nil
}

// decodeJobSkills accepts both [{"name": "Go"}] and ["Go"] layouts
func decodeJobSkills(data []byte, job *types.Job) error {
	job.Skills = []types.JobSkill{}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &job.Skills); err == nil {
		return nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("failed to decode skills of job %s: %w", job.ID, err)
	}
	job.Skills = make([]types.JobSkill, 0, len(names))
	for _, n := range names {
		job.Skills = append(job.Skills, types.JobSkill{Name: n})
	}
	return nil
}
