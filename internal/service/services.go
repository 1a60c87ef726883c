package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/streakmind/internal/companion"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/repository"
	"github.com/alexanderramin/streakmind/internal/scoring"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deps wires every service to one store. All services share a single mutex
// so each load-mutate-save runs alone within the process.
type Deps struct {
	Store     repository.Store
	Replies   companion.ReplyService
	Policy    scoring.StreakPolicy
	Clock     func() time.Time
	Logger    *zap.Logger
	Observers []UseCaseObserver
}

// Services bundles the use-case services built from one Deps.
type Services struct {
	Tracker    TrackerService
	Transcript TranscriptService
	Settings   SettingsService
	Memory     MemoryService
	Backup     BackupService
}

// New builds all services around a shared lock.
func New(d Deps) *Services {
	b := newBase(d)
	return &Services{
		Tracker:    &trackerService{base: b},
		Transcript: &transcriptService{base: b},
		Settings:   &settingsService{base: b},
		Memory:     &memoryService{base: b},
		Backup:     &backupService{base: b},
	}
}

// base holds what every service needs.
type base struct {
	mu       *sync.Mutex
	store    repository.Store
	replies  companion.ReplyService
	policy   scoring.StreakPolicy
	now      func() time.Time
	log      *zap.Logger
	observer UseCaseObserver
}

func newBase(d Deps) *base {
	b := &base{
		mu:       &sync.Mutex{},
		store:    d.Store,
		replies:  d.Replies,
		policy:   d.Policy,
		now:      d.Clock,
		log:      d.Logger,
		observer: combineObservers(d.Observers),
	}
	if b.replies == nil {
		b.replies = companion.NewReplyService(nil, 0, d.Logger)
	}
	if b.policy == nil {
		b.policy = scoring.DistinctDaysPolicy{}
	}
	if b.now == nil {
		b.now = func() time.Time { return time.Now().UTC() }
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	return b
}

// loadState reads the tracker document. An unreadable store degrades to an
// empty state.
func (b *base) loadState(ctx context.Context) *domain.TrackerState {
	st, err := b.store.State.Load(ctx)
	if err != nil {
		b.log.Warn("tracker state unreadable, starting empty", zap.Error(err))
		return &domain.TrackerState{}
	}
	return st
}

func (b *base) loadSettings(ctx context.Context) domain.Settings {
	s, err := b.store.Settings.Load(ctx)
	if err != nil {
		if !isNotFound(err) {
			b.log.Warn("settings unreadable, using defaults", zap.Error(err))
		}
		return domain.DefaultSettings()
	}
	return *s
}

func (b *base) loadMemory(ctx context.Context) *domain.UserMemory {
	m, err := b.store.Memory.Load(ctx)
	if err != nil {
		if !isNotFound(err) {
			b.log.Warn("memory unreadable, starting fresh", zap.Error(err))
		}
		fresh := domain.NewUserMemory(uuid.New().String(), b.now())
		return &fresh
	}
	return m
}

func (b *base) loadTranscript(ctx context.Context) []domain.ChatMessage {
	msgs, err := b.store.Transcript.Load(ctx)
	if err != nil {
		b.log.Warn("transcript unreadable, starting empty", zap.Error(err))
		return nil
	}
	return msgs
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
