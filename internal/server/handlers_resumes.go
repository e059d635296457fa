package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/server/middleware"
	"github.com/jonathan/resume-tailor/internal/types"
)

// handleSaveResume persists one tailoring result: three document-store
// inserts followed by two metadata-store inserts referencing them. A
// metadata failure after the documents are written is surfaced as an error
// without compensating deletes.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var req types.SaveRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Field: "request", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}
	if err := schemas.ValidateSaveRequest(body); err != nil {
		verr := &ErrValidation{Field: "request", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	ctx := r.Context()

	jobDescID, err := s.documents.Insert(ctx, userID, db.DocJobDescription,
		map[string]any{"text": req.JobDescription})
	if err != nil {
		s.persistenceError(w, "document", err)
		return
	}

	originalID, err := s.documents.Insert(ctx, userID, db.DocOriginalResume,
		map[string]any{"text": req.OriginalResume})
	if err != nil {
		s.persistenceError(w, "document", err)
		return
	}

	tailoredID, err := s.documents.Insert(ctx, userID, db.DocTailoredResume, map[string]any{
		"text":        req.TailoredResume,
		"match_score": req.MatchScore,
		"keywords":    req.Keywords,
		"service":     req.Service,
	})
	if err != nil {
		s.persistenceError(w, "document", err)
		return
	}

	jobRecordID, err := s.metadata.InsertJobRecord(ctx, db.JobRecord{
		UserID:           userID,
		JobDescriptionID: jobDescID,
	})
	if err != nil {
		s.persistenceError(w, "metadata", err)
		return
	}

	generationID, err := s.metadata.InsertGenerationRecord(ctx, db.GenerationRecord{
		UserID:           userID,
		JobRecordID:      jobRecordID,
		OriginalResumeID: originalID,
		TailoredResumeID: tailoredID,
		MatchScore:       req.MatchScore,
		Service:          req.Service,
	})
	if err != nil {
		s.persistenceError(w, "metadata", err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, types.SaveResponse{
		JobDescriptionID:   jobDescID,
		OriginalResumeID:   originalID,
		TailoredResumeID:   tailoredID,
		JobRecordID:        jobRecordID,
		GenerationRecordID: generationID,
	})
}

// handleListResumes lists the caller's tailored resume documents.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	docs, err := s.documents.ListByUser(r.Context(), userID, db.DocTailoredResume, 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": docs})
}

// handleListGenerations lists the caller's tailoring generation history,
// newest first.
func (s *Server) handleListGenerations(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	recs, err := s.metadata.ListGenerations(r.Context(), userID, 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"generations": recs})
}

// handleGetResume fetches one of the caller's documents by ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.getOwnedDocument(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleExportResume serves the text of a stored document as a plain-text
// download.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.getOwnedDocument(w, r)
	if !ok {
		return
	}

	text := documentText(doc)
	if text == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Document has no exportable text")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "resume-"+doc.ID.String()+".txt"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		log.Printf("Error writing export response: %v", err)
	}
}

// getOwnedDocument resolves the {id} path value to a document owned by the
// caller, writing the error response itself when that fails.
func (s *Server) getOwnedDocument(w http.ResponseWriter, r *http.Request) (*db.Document, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document ID format")
		return nil, false
	}

	doc, err := s.documents.Get(r.Context(), userID, docID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if doc == nil {
		nf := &ErrNotFound{DocumentID: docID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return nil, false
	}
	return doc, true
}

// documentText pulls the "text" field out of a document's JSON content.
func documentText(doc *db.Document) string {
	content, ok := doc.Content.(map[string]any)
	if !ok {
		return ""
	}
	text, _ := content["text"].(string)
	return text
}

// persistenceError logs and reports a failed store write.
func (s *Server) persistenceError(w http.ResponseWriter, store string, err error) {
	perr := &ErrPersistence{Store: store, Cause: err}
	log.Printf("[save] %v", perr)
	s.errorResponse(w, HTTPStatus(perr), perr.Error())
}
