package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentStore is the append-only JSONB document store. Documents are only
// ever inserted and read, never updated or deleted.
type DocumentStore struct {
	pool *pgxpool.Pool
}

// Insert stores a new document and returns its generated ID.
func (s *DocumentStore) Insert(ctx context.Context, userID uuid.UUID, docType string, content any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO documents (user_id, doc_type, content)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, docType, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert %s document: %w", docType, err)
	}
	return id, nil
}

// Get retrieves a document by ID, scoped to its owner. Returns nil when the
// document does not exist or belongs to another user.
func (s *DocumentStore) Get(ctx context.Context, userID, docID uuid.UUID) (*Document, error) {
	var doc Document
	var contentBytes []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, doc_type, content, created_at
		 FROM documents WHERE id = $1 AND user_id = $2`,
		docID, userID,
	).Scan(&doc.ID, &doc.UserID, &doc.DocType, &contentBytes, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	if len(contentBytes) > 0 {
		var content any
		if err := json.Unmarshal(contentBytes, &content); err == nil {
			doc.Content = content
		}
	}
	return &doc, nil
}

// ListByUser retrieves document summaries for a user, newest first,
// optionally filtered by document type.
func (s *DocumentStore) ListByUser(ctx context.Context, userID uuid.UUID, docType string, limit int) ([]DocumentSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, doc_type, created_at FROM documents WHERE user_id = $1`
	args := []any{userID}
	if docType != "" {
		query += ` AND doc_type = $2`
		args = append(args, docType)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentSummary
	for rows.Next() {
		var d DocumentSummary
		if err := rows.Scan(&d.ID, &d.DocType, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}
