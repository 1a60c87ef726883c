package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/streakmind/internal/companion"
	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/llm"
	"github.com/alexanderramin/streakmind/internal/repository"
	"github.com/alexanderramin/streakmind/internal/scoring"
	"github.com/alexanderramin/streakmind/internal/testutil"
	"github.com/stretchr/testify/require"
)

type harness struct {
	svc   *Services
	store repository.Store
	llm   *testutil.FakeLLM
	clock *testClock
	obs   *recordingObserver
}

type harnessOption func(*Deps)

func withPolicy(p scoring.StreakPolicy) harnessOption {
	return func(d *Deps) { d.Policy = p }
}

func withStore(s repository.Store) harnessOption {
	return func(d *Deps) { d.Store = s }
}

func withLLM(c llm.LLMClient) harnessOption {
	return func(d *Deps) { d.Replies = companion.NewReplyService(c, time.Second, nil) }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()
	h := &harness{
		store: repository.NewSQLiteStore(testutil.NewTestDB(t)),
		llm:   testutil.NewFakeLLM("Nice one!"),
		clock: &testClock{now: testutil.FixedNow},
		obs:   &recordingObserver{},
	}
	d := Deps{
		Store:     h.store,
		Replies:   companion.NewReplyService(h.llm, time.Second, nil),
		Clock:     h.clock.Now,
		Observers: []UseCaseObserver{h.obs},
	}
	for _, opt := range opts {
		opt(&d)
	}
	h.store = d.Store
	h.svc = New(d)
	return h
}

func (h *harness) say(t *testing.T, text string) *contract.IngestResult {
	t.Helper()
	res, err := h.svc.Tracker.Ingest(context.Background(), contract.IngestRequest{Message: text})
	require.NoError(t, err)
	return res
}

func (h *harness) state(t *testing.T) *domain.TrackerState {
	t.Helper()
	st, err := h.store.State.Load(context.Background())
	require.NoError(t, err)
	return st
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

// failingStateRepo wraps a StateRepo with injectable load and save errors.
type failingStateRepo struct {
	repository.StateRepo
	loadErr error
	saveErr error
}

func (r *failingStateRepo) Load(ctx context.Context) (*domain.TrackerState, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.StateRepo.Load(ctx)
}

func (r *failingStateRepo) Save(ctx context.Context, st *domain.TrackerState) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	return r.StateRepo.Save(ctx, st)
}
