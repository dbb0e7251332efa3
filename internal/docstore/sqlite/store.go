// Package sqlite provides a local document store on SQLite for seeding a
// development database without cloud credentials.
//
// Every document is one row keyed by its full path; fields are stored as a
// JSON object.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mazona200/mobileApp/internal/docstore"
	"github.com/mazona200/mobileApp/internal/docstore/sqlite/migrations"
	"github.com/mazona200/mobileApp/internal/platform/id"
	"github.com/mazona200/mobileApp/internal/platform/storage/sqlitemigrate"
	"github.com/mazona200/mobileApp/internal/platform/timeouts"
	_ "modernc.org/sqlite"
)

// serverTime marks a field the store fills with the insert time.
type serverTime struct{}

// Store persists documents in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens the database at path and applies the embedded schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		filepath.Clean(path), timeouts.SQLiteBusy.Milliseconds())
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Collection implements docstore.Store.
func (s *Store) Collection(name string) docstore.Collection {
	return collection{store: s, path: name}
}

// ServerTimestamp implements docstore.Store.
func (s *Store) ServerTimestamp() any {
	return serverTime{}
}

// Count returns the number of documents directly under collectionPath.
func (s *Store) Count(ctx context.Context, collectionPath string) (int, error) {
	var count int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection_path = ?`, collectionPath,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}

// Record is one stored document.
type Record struct {
	ID     string
	Path   string
	Fields map[string]any
}

// List returns the documents under collectionPath in insert order.
func (s *Store) List(ctx context.Context, collectionPath string) ([]Record, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, path, fields FROM documents WHERE collection_path = ? ORDER BY created_at, rowid`,
		collectionPath,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec Record
			raw string
		)
		if err := rows.Scan(&rec.ID, &rec.Path, &raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &rec.Fields); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", rec.Path, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return records, nil
}

func (s *Store) add(ctx context.Context, collectionPath string, fields map[string]any) (docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	docID, err := id.NewID()
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	resolved := make(map[string]any, len(fields))
	for key, value := range fields {
		if _, ok := value.(serverTime); ok {
			resolved[key] = now
			continue
		}
		resolved[key] = value
	}
	payload, err := json.Marshal(resolved)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	path := docstore.JoinPath(collectionPath, docID)
	if _, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO documents (path, collection_path, id, fields, created_at) VALUES (?, ?, ?, ?, ?)`,
		path, collectionPath, docID, string(payload), now.UnixMilli(),
	); err != nil {
		return nil, fmt.Errorf("insert document %s: %w", path, err)
	}
	return document{store: s, id: docID, path: path}, nil
}

type collection struct {
	store *Store
	path  string
}

func (c collection) Path() string { return c.path }

func (c collection) Add(ctx context.Context, fields map[string]any) (docstore.Document, error) {
	return c.store.add(ctx, c.path, fields)
}

type document struct {
	store *Store
	id    string
	path  string
}

func (d document) ID() string   { return d.id }
func (d document) Path() string { return d.path }

func (d document) Collection(name string) docstore.Collection {
	return collection{store: d.store, path: docstore.JoinPath(d.path, name)}
}
