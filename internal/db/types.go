package db

import (
	"time"

	"github.com/google/uuid"
)

// Document types stored in the document store.
const (
	DocJobDescription = "job_description"
	DocOriginalResume = "original_resume"
	DocTailoredResume = "tailored_resume"
)

// Document is one record in the append-only document store.
type Document struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	DocType   string    `json:"doc_type"`
	Content   any       `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// DocumentSummary is a lightweight view of a document for listings.
type DocumentSummary struct {
	ID        uuid.UUID `json:"id"`
	DocType   string    `json:"doc_type"`
	CreatedAt time.Time `json:"created_at"`
}

// JobRecord ties a user to a stored job description document.
type JobRecord struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	JobDescriptionID uuid.UUID `json:"job_description_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// GenerationRecord records one tailoring generation, referencing the three
// documents it produced or consumed.
type GenerationRecord struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	JobRecordID      uuid.UUID `json:"job_record_id"`
	OriginalResumeID uuid.UUID `json:"original_resume_id"`
	TailoredResumeID uuid.UUID `json:"tailored_resume_id"`
	MatchScore       int       `json:"match_score"`
	Service          string    `json:"service"`
	CreatedAt        time.Time `json:"created_at"`
}
