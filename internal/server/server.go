package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/server/middleware"
	"github.com/jonathan/resume-tailor/internal/tailor"
)

// documentStore is the document persistence surface the handlers depend on.
type documentStore interface {
	Insert(ctx context.Context, userID uuid.UUID, docType string, content any) (uuid.UUID, error)
	Get(ctx context.Context, userID, docID uuid.UUID) (*db.Document, error)
	ListByUser(ctx context.Context, userID uuid.UUID, docType string, limit int) ([]db.DocumentSummary, error)
}

// metadataStore is the metadata persistence surface the handlers depend on.
type metadataStore interface {
	InsertJobRecord(ctx context.Context, rec db.JobRecord) (uuid.UUID, error)
	InsertGenerationRecord(ctx context.Context, rec db.GenerationRecord) (uuid.UUID, error)
	ListGenerations(ctx context.Context, userID uuid.UUID, limit int) ([]db.GenerationRecord, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	documents   documentStore
	metadata    metadataStore
	coordinator *tailor.Coordinator
	summarizer  *llm.Lazy
	verifier    *TokenVerifier
}

// Config holds server configuration
type Config struct {
	Port               int
	DatabaseURL        string
	SummarizerProvider string
	SummarizerAPIKey   string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Summarizer handle is shared process-wide and built on first use
	summarizer := llm.NewLazy(llm.ConfigForProvider(cfg.SummarizerProvider), cfg.SummarizerAPIKey)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		db:          database,
		documents:   database.Documents(),
		metadata:    database.Metadata(),
		coordinator: tailor.NewCoordinator(summarizer),
		summarizer:  summarizer,
		verifier:    NewTokenVerifier(jwtConfig),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Summarizer calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. API routes sit behind the auth middleware so the
// handlers always see an authenticated user ID.
func (s *Server) routes() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("POST /api/tailor", s.handleTailor)
	api.HandleFunc("POST /api/resumes", s.handleSaveResume)
	api.HandleFunc("GET /api/resumes", s.handleListResumes)
	api.HandleFunc("GET /api/resumes/{id}", s.handleGetResume)
	api.HandleFunc("GET /api/generations", s.handleListGenerations)
	api.HandleFunc("GET /api/export/{id}", s.handleExportResume)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("/api/", middleware.Auth(s.verifier)(api))
	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.summarizer.Close(); err != nil {
		log.Printf("Error closing summarizer: %v", err)
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
