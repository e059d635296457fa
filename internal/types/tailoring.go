// Package types provides request and response types shared by the HTTP API.
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TailorRequest is the request body for POST /api/tailor.
type TailorRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	ResumeText     string `json:"resume_text" validate:"required"`
	UseAlternative bool   `json:"use_alternative,omitempty"`
}

// Validate validates the TailorRequest. Whitespace-only inputs are rejected
// the same as missing ones.
func (r *TailorRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.JobDescription) == "" {
		return fmt.Errorf("job_description must not be blank")
	}
	if strings.TrimSpace(r.ResumeText) == "" {
		return fmt.Errorf("resume_text must not be blank")
	}
	return nil
}

// TailorResponse is the response body for POST /api/tailor.
type TailorResponse struct {
	TailoredResume string   `json:"tailored_resume"`
	Keywords       []string `json:"keywords"`
	Improvements   []string `json:"improvements"`
	MatchScore     int      `json:"match_score"`
	Timestamp      string   `json:"timestamp"`
	Service        string   `json:"service"`
}

// SaveRequest is the request body for POST /api/resumes.
type SaveRequest struct {
	JobDescription string   `json:"job_description" validate:"required"`
	OriginalResume string   `json:"original_resume" validate:"required"`
	TailoredResume string   `json:"tailored_resume" validate:"required"`
	MatchScore     int      `json:"match_score" validate:"min=0,max=100"`
	Keywords       []string `json:"keywords,omitempty"`
	Service        string   `json:"service,omitempty"`
}

// Validate validates the SaveRequest using the validator.
func (r *SaveRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SaveResponse returns the identifiers generated by a save operation.
type SaveResponse struct {
	JobDescriptionID   uuid.UUID `json:"job_description_id"`
	OriginalResumeID   uuid.UUID `json:"original_resume_id"`
	TailoredResumeID   uuid.UUID `json:"tailored_resume_id"`
	JobRecordID        uuid.UUID `json:"job_record_id"`
	GenerationRecordID uuid.UUID `json:"generation_record_id"`
}
