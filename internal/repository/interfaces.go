package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/streakmind/internal/domain"
)

// ErrNotFound is returned when a requested document or row does not exist.
var ErrNotFound = errors.New("not found")

// Each repository loads and saves one whole document. Save replaces the
// stored document atomically.

// StateRepo persists the tracker snapshot: definitions, log and streaks.
// Load on an empty store returns an empty state, not ErrNotFound.
type StateRepo interface {
	Load(ctx context.Context) (*domain.TrackerState, error)
	Save(ctx context.Context, s *domain.TrackerState) error
}

// TranscriptRepo persists the conversational transcript in order.
type TranscriptRepo interface {
	Load(ctx context.Context) ([]domain.ChatMessage, error)
	Save(ctx context.Context, msgs []domain.ChatMessage) error
}

// SettingsRepo persists user settings. Load returns ErrNotFound when none
// were ever saved.
type SettingsRepo interface {
	Load(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) error
}

// MemoryRepo persists the user memory document. Load returns ErrNotFound
// when none was ever saved.
type MemoryRepo interface {
	Load(ctx context.Context) (*domain.UserMemory, error)
	Save(ctx context.Context, m *domain.UserMemory) error
}

// Store bundles the four document repositories of one backend.
type Store struct {
	State      StateRepo
	Transcript TranscriptRepo
	Settings   SettingsRepo
	Memory     MemoryRepo
}
