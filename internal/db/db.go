// Package db provides the document store backing profiles and the job board.
// Documents are JSON blobs addressed by (collection, id) and listed in insertion order.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// DefaultSQLitePath is used when neither a database URL nor a SQLite path is configured.
const DefaultSQLitePath = "career_mentor.db"

// Document is a stored JSON document.
type Document struct {
	Collection string
	ID         string
	Data       []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Store is implemented by the SQLite and PostgreSQL backends.
type Store interface {
	// Get loads the document and decodes it into dst.
	Get(ctx context.Context, collection, id string, dst any) error
	// Put inserts or replaces the document. Replacing keeps its list position.
	Put(ctx context.Context, collection, id string, v any) error
	// Delete removes the document.
	Delete(ctx context.Context, collection, id string) error
	// List returns every document of a collection in insertion order.
	List(ctx context.Context, collection string) ([]Document, error)
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	// DatabaseURL selects PostgreSQL when it has a postgres:// or postgresql:// scheme.
	DatabaseURL string
	// SQLitePath is the database file used otherwise. ":memory:" is allowed.
	SQLitePath string
}

// UsesPostgres reports whether the config selects the PostgreSQL backend.
func (c Config) UsesPostgres() bool {
	u := strings.ToLower(c.DatabaseURL)
	return strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://")
}

// Open connects to the configured backend and ensures its schema exists.
func Open(ctx context.Context, cfg Config) (Store, error) {
	if cfg.UsesPostgres() {
		pg, err := Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return pg, nil
	}
	path := cfg.SQLitePath
	if path == "" {
		path = DefaultSQLitePath
	}
	lite, err := OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	return lite, nil
}

// ListAs decodes every document of a collection into T, in insertion order.
func ListAs[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	docs, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal(d.Data, &v); err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", collection, d.ID, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func encode(collection, id string, v any) ([]byte, error) {
	if collection == "" || id == "" {
		return nil, fmt.Errorf("collection and id are required")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s/%s: %w", collection, id, err)
	}
	return data, nil
}

func decode(collection, id string, data []byte, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s/%s: %w", collection, id, err)
	}
	return nil
}
