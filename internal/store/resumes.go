package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ErrResumeNotFound is returned when no resume exists for the given ID.
var ErrResumeNotFound = errors.New("resume not found")

// LoadResumeFacts reads a persisted resume and its nested skill and work
// experience records into the engine's input shape. Date columns are kept as
// raw strings; the engine's date resolver owns their interpretation.
func (s *Store) LoadResumeFacts(ctx context.Context, resumeID uuid.UUID) (*types.ResumeFacts, error) {
	var rawText string
	err := s.pool.QueryRow(ctx,
		`SELECT raw_text FROM resumes WHERE id = $1`,
		resumeID,
	).Scan(&rawText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to load resume %s: %w", resumeID, err)
	}

	facts := &types.ResumeFacts{RawText: rawText}

	skillRows, err := s.pool.Query(ctx,
		`SELECT skill FROM resume_skills WHERE resume_id = $1 ORDER BY skill`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume skills: %w", err)
	}
	defer skillRows.Close()

	for skillRows.Next() {
		var skill string
		if err := skillRows.Scan(&skill); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		facts.Skills = append(facts.Skills, skill)
	}
	if err := skillRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill rows: %w", err)
	}

	expRows, err := s.pool.Query(ctx,
		`SELECT position, company,
		        COALESCE(start_date, ''), COALESCE(end_date, ''), COALESCE(duration, '')
		 FROM work_experiences
		 WHERE resume_id = $1
		 ORDER BY sort_order`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load work experiences: %w", err)
	}
	defer expRows.Close()

	for expRows.Next() {
		var entry types.ExperienceEntry
		if err := expRows.Scan(&entry.Position, &entry.Company,
			&entry.StartDate, &entry.EndDate, &entry.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan work experience row: %w", err)
		}
		facts.Experience = append(facts.Experience, entry)
	}
	if err := expRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work experience rows: %w", err)
	}

	return facts, nil
}
