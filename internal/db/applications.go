package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ApplicationRecord is an application together with the ids it links
type ApplicationRecord struct {
	Application      types.Application
	JobID            uuid.UUID
	StudentProfileID uuid.UUID
}

// GetApplication retrieves an application by ID. It returns nil, nil when none exists.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*ApplicationRecord, error) {
	var rec ApplicationRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, student_profile_id, cover_letter, resume_url
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&rec.Application.ID, &rec.JobID, &rec.StudentProfileID,
		&rec.Application.CoverLetter, &rec.Application.ResumeURL)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &rec, nil
}

// ListApplicationsForJob retrieves every application to a job, oldest first
func (db *DB) ListApplicationsForJob(ctx context.Context, jobID uuid.UUID) ([]ApplicationRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_id, student_profile_id, cover_letter, resume_url
		 FROM applications WHERE job_id = $1 ORDER BY created_at, id`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	records := make([]ApplicationRecord, 0)
	for rows.Next() {
		var rec ApplicationRecord
		if err := rows.Scan(&rec.Application.ID, &rec.JobID, &rec.StudentProfileID,
			&rec.Application.CoverLetter, &rec.Application.ResumeURL); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return records, nil
}
