package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/streakmind/internal/db"
	"github.com/alexanderramin/streakmind/internal/domain"
)

// Document names shared by every backend.
const (
	docSettings = "settings"
	docMemory   = "memory"
)

// sqliteDocuments stores JSON documents by name in the documents table.
type sqliteDocuments struct {
	db db.DBTX
}

func (d sqliteDocuments) get(ctx context.Context, name string, v any) error {
	var body string
	err := d.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE name = ?`, name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("document %s: %w", name, ErrNotFound)
		}
		return fmt.Errorf("reading document %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("decoding document %s: %w", name, err)
	}
	return nil
}

func (d sqliteDocuments) put(ctx context.Context, name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", name, err)
	}
	_, err = d.db.ExecContext(ctx, `INSERT INTO documents (name, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, string(body), nowUTC())
	if err != nil {
		return fmt.Errorf("writing document %s: %w", name, err)
	}
	return nil
}

// SQLiteSettingsRepo implements SettingsRepo as a JSON document.
type SQLiteSettingsRepo struct {
	docs sqliteDocuments
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{docs: sqliteDocuments{db: conn}}
}

func (r *SQLiteSettingsRepo) Load(ctx context.Context) (*domain.Settings, error) {
	s := domain.DefaultSettings()
	if err := r.docs.get(ctx, docSettings, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Save(ctx context.Context, s *domain.Settings) error {
	return r.docs.put(ctx, docSettings, s)
}

// SQLiteMemoryRepo implements MemoryRepo as a JSON document.
type SQLiteMemoryRepo struct {
	docs sqliteDocuments
}

func NewSQLiteMemoryRepo(conn db.DBTX) *SQLiteMemoryRepo {
	return &SQLiteMemoryRepo{docs: sqliteDocuments{db: conn}}
}

func (r *SQLiteMemoryRepo) Load(ctx context.Context) (*domain.UserMemory, error) {
	var m domain.UserMemory
	if err := r.docs.get(ctx, docMemory, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *SQLiteMemoryRepo) Save(ctx context.Context, m *domain.UserMemory) error {
	return r.docs.put(ctx, docMemory, m)
}

// NewSQLiteStore wires all SQLite repositories on one database.
func NewSQLiteStore(database *sql.DB) Store {
	uow := db.NewSQLiteUnitOfWork(database)
	return Store{
		State:      NewSQLiteStateRepo(database, uow),
		Transcript: NewSQLiteTranscriptRepo(database, uow),
		Settings:   NewSQLiteSettingsRepo(database),
		Memory:     NewSQLiteMemoryRepo(database),
	}
}
