package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
	schemafiles "github.com/jonathan/resume-matcher/schemas"
)

// profileRow holds the raw JSONB columns of a student_profiles row
type profileRow struct {
	ID               uuid.UUID
	Skills           []byte
	Education        []byte
	Experience       []byte
	ParsedResumeData []byte
}

// GetStudentProfile retrieves a student profile by ID. It returns nil, nil when
// no profile exists. A stored parsed résumé that does not match the extracted
// profile schema is logged and left out, so scoring falls back to the profile fields.
func (db *DB) GetStudentProfile(ctx context.Context, id uuid.UUID) (*types.StudentProfile, error) {
	var row profileRow
	err := db.pool.QueryRow(ctx,
		`SELECT id, skills, education, experience, parsed_resume_data
		 FROM student_profiles WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.Skills, &row.Education, &row.Experience, &row.ParsedResumeData)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student profile: %w", err)
	}
	return decodeProfile(row, db.logger)
}

func decodeProfile(row profileRow, log *zap.Logger) (*types.StudentProfile, error) {
	p := &types.StudentProfile{ID: row.ID}

	for _, col := range []struct {
		name string
		data []byte
		dst  any
	}{
		{"skills", row.Skills, &p.Skills},
		{"education", row.Education, &p.Education},
		{"experience", row.Experience, &p.Experience},
	} {
		if len(col.data) == 0 {
			continue
		}
		if err := json.Unmarshal(col.data, col.dst); err != nil {
			return nil, fmt.Errorf("failed to decode %s of student profile %s: %w", col.name, row.ID, err)
		}
	}

	p.ParsedResumeData = decodeParsedResume(row.ID, row.ParsedResumeData, log)
	return p, nil
}

// decodeParsedResume returns nil for missing, null or invalid blobs
func decodeParsedResume(id uuid.UUID, data []byte, log *zap.Logger) *types.ExtractedProfile {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if err := schemas.ValidateBytes(schemafiles.ExtractedProfile, data); err != nil {
		log.Warn("ignoring invalid parsed resume data", zapProfileID(id), zap.Error(err))
		return nil
	}

	var parsed types.ExtractedProfile
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Warn("ignoring undecodable parsed resume data", zapProfileID(id), zap.Error(err))
		return nil
	}
	parsed.Normalize()
	return &parsed
}

// SaveParsedResume stores an extracted profile as the profile's parsed résumé data
func (db *DB) SaveParsedResume(ctx context.Context, profileID uuid.UUID, parsed *types.ExtractedProfile) error {
	if parsed == nil {
		return fmt.Errorf("parsed resume is required")
	}
	parsed.Normalize()

	if err := schemas.ValidateValue(schemafiles.ExtractedProfile, parsed); err != nil {
		return fmt.Errorf("refusing to store invalid parsed resume: %w", err)
	}
	data, err := json.Marshal(parsed)
	if err != nil {
		return fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE student_profiles SET parsed_resume_data = $1, updated_at = NOW() WHERE id = $2`,
		data, profileID,
	)
	if err != nil {
		return fmt.Errorf("failed to save parsed resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("student profile %s: %w", profileID, ErrNotFound)
	}
	return nil
}

func zapProfileID(id uuid.UUID) zap.Field {
	return zap.String("student_profile_id", id.String())
}

func zapJobID(id uuid.UUID) zap.Field {
	return zap.String("job_id", id.String())
}

func zapValue(v string) zap.Field {
	return zap.String("value", v)
}
