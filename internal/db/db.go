// Package db provides PostgreSQL access for the document store and the
// relational metadata store. The two stores share one connection pool but are
// written independently: there is no cross-store transaction, and a metadata
// failure after a successful document insert leaves the document in place.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool shared by both stores.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Documents returns the append-only document store backed by this pool.
func (db *DB) Documents() *DocumentStore {
	return &DocumentStore{pool: db.pool}
}

// Metadata returns the relational metadata store backed by this pool.
func (db *DB) Metadata() *MetadataStore {
	return &MetadataStore{pool: db.pool}
}
