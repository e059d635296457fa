package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MetadataStore records job and generation metadata referencing document IDs.
type MetadataStore struct {
	pool *pgxpool.Pool
}

// InsertJobRecord creates a job record pointing at a stored job description.
func (s *MetadataStore) InsertJobRecord(ctx context.Context, rec JobRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO job_records (user_id, job_description_id)
		 VALUES ($1, $2)
		 RETURNING id`,
		rec.UserID, rec.JobDescriptionID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert job record: %w", err)
	}
	return id, nil
}

// InsertGenerationRecord creates a generation record referencing the job
// record and the resume documents of one tailoring run.
func (s *MetadataStore) InsertGenerationRecord(ctx context.Context, rec GenerationRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO generation_records
		 (user_id, job_record_id, original_resume_id, tailored_resume_id, match_score, service)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		rec.UserID, rec.JobRecordID, rec.OriginalResumeID, rec.TailoredResumeID,
		rec.MatchScore, rec.Service,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert generation record: %w", err)
	}
	return id, nil
}

// ListGenerations retrieves a user's generation history, newest first.
func (s *MetadataStore) ListGenerations(ctx context.Context, userID uuid.UUID, limit int) ([]GenerationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, job_record_id, original_resume_id, tailored_resume_id,
		        match_score, service, created_at
		 FROM generation_records WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var recs []GenerationRecord
	for rows.Next() {
		var r GenerationRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.JobRecordID, &r.OriginalResumeID,
			&r.TailoredResumeID, &r.MatchScore, &r.Service, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation record: %w", err)
		}
		recs = append(recs, r)
	}
	return recs, nil
}
