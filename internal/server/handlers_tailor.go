package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/resume-tailor/internal/tailor"
	"github.com/jonathan/resume-tailor/internal/types"
)

// handleTailor runs the tailoring pipeline for the authenticated user. The
// operation never fails once validation passes: summarizer problems are
// recovered internally and the response is always best-effort content.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req types.TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Field: "request", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	result := s.coordinator.Tailor(r.Context(), tailor.Request{
		JobDescription: req.JobDescription,
		ResumeText:     req.ResumeText,
		UseAlternative: req.UseAlternative,
	})

	log.Printf("[tailor] produced result via %s (score %d)", result.Service, result.MatchScore)

	s.jsonResponse(w, http.StatusOK, types.TailorResponse{
		TailoredResume: result.TailoredText,
		Keywords:       result.Keywords,
		Improvements:   result.Improvements,
		MatchScore:     result.MatchScore,
		Timestamp:      result.Timestamp,
		Service:        result.Service,
	})
}
