package service

import (
	"context"
	"encoding/json"

	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/importer"
)

// TrackerService runs the ingest pipeline and the activity, log and streak
// use cases over the tracker document.
type TrackerService interface {
	// Ingest interprets one user message. Interpretation failures degrade to
	// reply text; only an empty message or a failed save return an error.
	Ingest(ctx context.Context, req contract.IngestRequest) (*contract.IngestResult, error)
	Stats(ctx context.Context) (*contract.Stats, error)
	Snapshot(ctx context.Context) (*domain.TrackerState, error)

	ListActivities(ctx context.Context) ([]domain.Activity, error)
	CreateActivity(ctx context.Context, req contract.CreateActivityRequest) (*domain.Activity, error)
	UpdateActivity(ctx context.Context, name string, req contract.UpdateActivityRequest) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, name string) (*contract.DeleteActivityResult, error)

	ListLogs(ctx context.Context, activity string, limit int) ([]domain.LogEntry, error)
	DeleteLog(ctx context.Context, id string) (*contract.DeleteLogResult, error)
	RebuildStreaks(ctx context.Context) (domain.StreakMap, error)
}

type TranscriptService interface {
	List(ctx context.Context) ([]domain.ChatMessage, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	// Update merges a partial JSON document into the current settings.
	Update(ctx context.Context, patch json.RawMessage) (*domain.Settings, error)
	Reset(ctx context.Context) (*domain.Settings, error)
}

type MemoryService interface {
	Get(ctx context.Context) (*domain.UserMemory, error)
	// Clear empties the named fields; no fields or "all" clears everything.
	Clear(ctx context.Context, fields ...string) (*domain.UserMemory, error)
	RemoveItem(ctx context.Context, category, item string) (*domain.UserMemory, error)
}

// BackupService exports and restores every stored document at once.
type BackupService interface {
	Export(ctx context.Context) (*importer.Backup, error)
	// Import validates b and applies it. Validation failures return an
	// INVALID error listing every problem and change nothing.
	Import(ctx context.Context, b *importer.Backup, mode contract.ImportMode) (*contract.ImportResult, error)
}
