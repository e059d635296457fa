package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/tailor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a server without a database. Store-backed handlers
// would panic on a nil store, which doubles as proof that rejected requests
// never reach persistence.
func newTestServer() *Server {
	summarizer := llm.NewLazy(llm.DefaultConfig(), "")
	return &Server{
		coordinator: tailor.NewCoordinator(summarizer),
		summarizer:  summarizer,
		verifier:    NewTokenVerifier(&config.JWTConfig{Secret: testSecret}),
	}
}

// newTestServerWithStores builds a server backed by in-memory fake stores.
func newTestServerWithStores(docs documentStore, meta metadataStore) *Server {
	s := newTestServer()
	s.documents = docs
	s.metadata = meta
	return s
}

// fakeDocInsert records one document-store insert.
type fakeDocInsert struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	DocType string
	Content map[string]any
}

type fakeDocumentStore struct {
	inserts []fakeDocInsert
	docs    map[uuid.UUID]*db.Document
}

func (f *fakeDocumentStore) Insert(_ context.Context, userID uuid.UUID, docType string, content any) (uuid.UUID, error) {
	id := uuid.New()
	f.inserts = append(f.inserts, fakeDocInsert{
		ID:      id,
		UserID:  userID,
		DocType: docType,
		Content: content.(map[string]any),
	})
	return id, nil
}

func (f *fakeDocumentStore) Get(_ context.Context, userID, docID uuid.UUID) (*db.Document, error) {
	doc, ok := f.docs[docID]
	if !ok || doc.UserID != userID {
		return nil, nil
	}
	return doc, nil
}

func (f *fakeDocumentStore) ListByUser(_ context.Context, userID uuid.UUID, docType string, _ int) ([]db.DocumentSummary, error) {
	var out []db.DocumentSummary
	for _, doc := range f.docs {
		if doc.UserID == userID && doc.DocType == docType {
			out = append(out, db.DocumentSummary{ID: doc.ID, DocType: doc.DocType, CreatedAt: doc.CreatedAt})
		}
	}
	return out, nil
}

type fakeMetadataStore struct {
	jobRecords    []db.JobRecord
	generations   []db.GenerationRecord
	jobRecordErr  error
	generationErr error
	history       []db.GenerationRecord
}

func (f *fakeMetadataStore) InsertJobRecord(_ context.Context, rec db.JobRecord) (uuid.UUID, error) {
	if f.jobRecordErr != nil {
		return uuid.Nil, f.jobRecordErr
	}
	rec.ID = uuid.New()
	f.jobRecords = append(f.jobRecords, rec)
	return rec.ID, nil
}

func (f *fakeMetadataStore) InsertGenerationRecord(_ context.Context, rec db.GenerationRecord) (uuid.UUID, error) {
	if f.generationErr != nil {
		return uuid.Nil, f.generationErr
	}
	rec.ID = uuid.New()
	f.generations = append(f.generations, rec)
	return rec.ID, nil
}

func (f *fakeMetadataStore) ListGenerations(_ context.Context, userID uuid.UUID, _ int) ([]db.GenerationRecord, error) {
	var out []db.GenerationRecord
	for _, rec := range f.history {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func authedRequest(t *testing.T, method, target string, body string) *http.Request {
	t.Helper()
	return authedRequestAs(t, uuid.New(), method, target, body)
}

func authedRequestAs(t *testing.T, userID uuid.UUID, method, target string, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	token := mintToken(t, testSecret, userID.String(), time.Hour)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestHealth_NoAuthRequired(t *testing.T) {
	handler := newTestServer().routes()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestTailor_MethodNotAllowed(t *testing.T) {
	handler := newTestServer().routes()

	req := authedRequest(t, http.MethodGet, "/api/tailor", "")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestTailor_RequiresAuth(t *testing.T) {
	handler := newTestServer().routes()

	req := httptest.NewRequest(http.MethodPost, "/api/tailor",
		strings.NewReader(`{"job_description":"x","resume_text":"y"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTailor_ExpiredTokenRejected(t *testing.T) {
	handler := newTestServer().routes()

	req := httptest.NewRequest(http.MethodPost, "/api/tailor",
		strings.NewReader(`{"job_description":"x","resume_text":"y"}`))
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testSecret, uuid.New().String(), -time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTailor_InvalidJSON(t *testing.T) {
	handler := newTestServer().routes()

	req := authedRequest(t, http.MethodPost, "/api/tailor", `{not json`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTailor_BlankFieldsRejected(t *testing.T) {
	handler := newTestServer().routes()

	req := authedRequest(t, http.MethodPost, "/api/tailor",
		`{"job_description":"   ","resume_text":"Jane Doe"}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job_description")
}

func TestTailor_FallbackResult(t *testing.T) {
	handler := newTestServer().routes()

	body := `{
		"job_description": "Looking for a frontend developer with React and TypeScript experience",
		"resume_text": "Jane Doe\njane@example.com\n\nPROFESSIONAL SUMMARY\nFrontend developer building apps with React.\n\nTECHNICAL SKILLS\n- Programming: JavaScript\n\nPROFESSIONAL EXPERIENCE\nBuilt dashboards using React.js"
	}`

	req := authedRequest(t, http.MethodPost, "/api/tailor", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := rec.Body.String()
	assert.Contains(t, resp, tailor.FallbackService)
	assert.Contains(t, resp, "tailored_resume")
	assert.Contains(t, resp, "match_score")
}

func TestSaveResume_InvalidJSONWritesNothing(t *testing.T) {
	handler := newTestServer().routes()

	req := authedRequest(t, http.MethodPost, "/api/resumes", `{broken`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveResume_MissingFieldsWritesNothing(t *testing.T) {
	handler := newTestServer().routes()

	req := authedRequest(t, http.MethodPost, "/api/resumes",
		`{"job_description":"role"}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveResume_SchemaRejectsUnknownFieldsWritesNothing(t *testing.T) {
	handler := newTestServer().routes()

	body := `{
		"job_description": "role",
		"original_resume": "original",
		"tailored_resume": "tailored",
		"match_score": 80,
		"unexpected": true
	}`
	req := authedRequest(t, http.MethodPost, "/api/resumes", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetResume_InvalidIDFormat(t *testing.T) {
	handler := newTestServer().routes()

	req := authedRequest(t, http.MethodGet, "/api/resumes/not-a-uuid", "")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportResume_InvalidIDFormat(t *testing.T) {
	handler := newTestServer().routes()

	req := authedRequest(t, http.MethodGet, "/api/export/not-a-uuid", "")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveResume_PersistsDocumentsAndMetadata(t *testing.T) {
	docStore := &fakeDocumentStore{}
	metaStore := &fakeMetadataStore{}
	handler := newTestServerWithStores(docStore, metaStore).routes()

	userID := uuid.New()
	body := `{
		"job_description": "Frontend role",
		"original_resume": "original text",
		"tailored_resume": "tailored text",
		"match_score": 85,
		"keywords": ["React", "TypeScript"],
		"service": "DistilBART-CNN"
	}`
	req := authedRequestAs(t, userID, http.MethodPost, "/api/resumes", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	// Three documents, in job/original/tailored order, all owned by the caller.
	require.Len(t, docStore.inserts, 3)
	assert.Equal(t, db.DocJobDescription, docStore.inserts[0].DocType)
	assert.Equal(t, db.DocOriginalResume, docStore.inserts[1].DocType)
	assert.Equal(t, db.DocTailoredResume, docStore.inserts[2].DocType)
	for _, ins := range docStore.inserts {
		assert.Equal(t, userID, ins.UserID)
	}
	assert.Equal(t, "tailored text", docStore.inserts[2].Content["text"])
	assert.Equal(t, 85, docStore.inserts[2].Content["match_score"])

	// Two metadata records referencing the generated document IDs.
	require.Len(t, metaStore.jobRecords, 1)
	assert.Equal(t, docStore.inserts[0].ID, metaStore.jobRecords[0].JobDescriptionID)

	require.Len(t, metaStore.generations, 1)
	gen := metaStore.generations[0]
	assert.Equal(t, metaStore.jobRecords[0].ID, gen.JobRecordID)
	assert.Equal(t, docStore.inserts[1].ID, gen.OriginalResumeID)
	assert.Equal(t, docStore.inserts[2].ID, gen.TailoredResumeID)
	assert.Equal(t, 85, gen.MatchScore)

	var resp struct {
		JobDescriptionID   uuid.UUID `json:"job_description_id"`
		TailoredResumeID   uuid.UUID `json:"tailored_resume_id"`
		GenerationRecordID uuid.UUID `json:"generation_record_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, docStore.inserts[0].ID, resp.JobDescriptionID)
	assert.Equal(t, docStore.inserts[2].ID, resp.TailoredResumeID)
	assert.Equal(t, gen.ID, resp.GenerationRecordID)
}

func TestSaveResume_MetadataFailureKeepsDocuments(t *testing.T) {
	docStore := &fakeDocumentStore{}
	metaStore := &fakeMetadataStore{generationErr: fmt.Errorf("connection reset")}
	handler := newTestServerWithStores(docStore, metaStore).routes()

	body := `{
		"job_description": "role",
		"original_resume": "original",
		"tailored_resume": "tailored",
		"match_score": 70
	}`
	req := authedRequest(t, http.MethodPost, "/api/resumes", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Document writes that succeeded before the failure are not rolled back.
	assert.Len(t, docStore.inserts, 3)
	assert.Len(t, metaStore.jobRecords, 1)
	assert.Empty(t, metaStore.generations)
}

func TestListGenerations_ReturnsCallerHistory(t *testing.T) {
	userID := uuid.New()
	metaStore := &fakeMetadataStore{history: []db.GenerationRecord{
		{ID: uuid.New(), UserID: userID, MatchScore: 82, Service: "DistilBART-CNN"},
		{ID: uuid.New(), UserID: uuid.New(), MatchScore: 60, Service: tailor.FallbackService},
	}}
	handler := newTestServerWithStores(&fakeDocumentStore{}, metaStore).routes()

	req := authedRequestAs(t, userID, http.MethodGet, "/api/generations", "")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Generations []db.GenerationRecord `json:"generations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Generations, 1)
	assert.Equal(t, userID, resp.Generations[0].UserID)
	assert.Equal(t, 82, resp.Generations[0].MatchScore)
}

func TestExportResume_PlainTextAttachment(t *testing.T) {
	userID := uuid.New()
	docID := uuid.New()
	docStore := &fakeDocumentStore{docs: map[uuid.UUID]*db.Document{
		docID: {
			ID:      docID,
			UserID:  userID,
			DocType: db.DocTailoredResume,
			Content: map[string]any{"text": "Jane Doe\n\nPROFESSIONAL SUMMARY\nFrontend developer."},
		},
	}}
	handler := newTestServerWithStores(docStore, &fakeMetadataStore{}).routes()

	req := authedRequestAs(t, userID, http.MethodGet, "/api/export/"+docID.String(), "")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resume-"+docID.String()+".txt")
	assert.Contains(t, rec.Body.String(), "PROFESSIONAL SUMMARY")
}

func TestExportResume_ForeignDocumentNotFound(t *testing.T) {
	ownerID := uuid.New()
	docID := uuid.New()
	docStore := &fakeDocumentStore{docs: map[uuid.UUID]*db.Document{
		docID: {ID: docID, UserID: ownerID, DocType: db.DocTailoredResume,
			Content: map[string]any{"text": "private"}},
	}}
	handler := newTestServerWithStores(docStore, &fakeMetadataStore{}).routes()

	req := authedRequestAs(t, uuid.New(), http.MethodGet, "/api/export/"+docID.String(), "")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "f", Message: "m"}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrNotFound{DocumentID: uuid.New()}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&ErrPersistence{Store: "document"}))
}
