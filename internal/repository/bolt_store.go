package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
	bolt "go.etcd.io/bbolt"
)

const (
	boltBucket = "documents"

	docTracker    = "tracker"
	docTranscript = "transcript"
)

// BoltStore keeps every document as one JSON value in a single bbolt bucket.
// It implements all four repositories.
type BoltStore struct {
	db     *bolt.DB
	bucket []byte
}

// OpenBoltStore opens the bbolt file at path and ensures the bucket exists.
func OpenBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating bolt directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt store: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}
	return &BoltStore{db: db, bucket: []byte(boltBucket)}, nil
}

// Close closes the bbolt database.
func (s *BoltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Store exposes the bolt document store through the repository bundle.
func (s *BoltStore) Store() Store {
	return Store{
		State:      boltState{s},
		Transcript: boltTranscript{s},
		Settings:   boltSettings{s},
		Memory:     boltMemory{s},
	}
}

func (s *BoltStore) get(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(s.bucket).Get([]byte(name))
		if raw == nil {
			return fmt.Errorf("document %s: %w", name, ErrNotFound)
		}
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("decoding document %s: %w", name, err)
		}
		return nil
	})
}

func (s *BoltStore) put(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", name, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(name), payload)
	})
}

type boltState struct{ s *BoltStore }

func (b boltState) Load(ctx context.Context) (*domain.TrackerState, error) {
	st := &domain.TrackerState{}
	if err := b.s.get(ctx, docTracker, st); err != nil {
		if isNotFound(err) {
			return &domain.TrackerState{}, nil
		}
		return nil, err
	}
	return st, nil
}

func (b boltState) Save(ctx context.Context, st *domain.TrackerState) error {
	return b.s.put(ctx, docTracker, st)
}

type boltTranscript struct{ s *BoltStore }

func (b boltTranscript) Load(ctx context.Context) ([]domain.ChatMessage, error) {
	var msgs []domain.ChatMessage
	if err := b.s.get(ctx, docTranscript, &msgs); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return msgs, nil
}

func (b boltTranscript) Save(ctx context.Context, msgs []domain.ChatMessage) error {
	return b.s.put(ctx, docTranscript, msgs)
}

type boltSettings struct{ s *BoltStore }

func (b boltSettings) Load(ctx context.Context) (*domain.Settings, error) {
	s := domain.DefaultSettings()
	if err := b.s.get(ctx, docSettings, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (b boltSettings) Save(ctx context.Context, s *domain.Settings) error {
	return b.s.put(ctx, docSettings, s)
}

type boltMemory struct{ s *BoltStore }

func (b boltMemory) Load(ctx context.Context) (*domain.UserMemory, error) {
	var m domain.UserMemory
	if err := b.s.get(ctx, docMemory, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (b boltMemory) Save(ctx context.Context, m *domain.UserMemory) error {
	return b.s.put(ctx, docMemory, m)
}
