package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/scoring"
	"github.com/google/uuid"
)

type trackerService struct {
	*base
}

func (s *trackerService) Stats(ctx context.Context) (*contract.Stats, error) {
	s.mu.Lock()
	st := s.loadState(ctx)
	s.mu.Unlock()

	return &contract.Stats{
		TotalPoints: st.TotalPoints(),
		Streaks:     st.Streaks,
		Badges:      scoring.Badges(st.Streaks),
		Logs:        st.RecentLogs(contract.MaxStatsLogs),
		Activities:  st.Activities,
	}, nil
}

func (s *trackerService) Snapshot(ctx context.Context) (*domain.TrackerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.store.State.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tracker state: %w", err)
	}
	return st, nil
}

func (s *trackerService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadState(ctx).Activities, nil
}

func (s *trackerService) CreateActivity(ctx context.Context, req contract.CreateActivityRequest) (a *domain.Activity, err error) {
	fields := map[string]any{"name": req.Name}
	done := track(ctx, s.observer, UseCaseCreateActivity, fields)
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.loadState(ctx)
	name := domain.NormalizeActivityName(req.Name)
	if st.HasActivity(name) {
		return nil, domain.ErrActivityExists
	}
	if req.VisualizationType != "" && !domain.ValidVisualizations[req.VisualizationType] {
		return nil, domain.ErrInvalidViz
	}

	def := domain.Activity{
		ID:                uuid.New().String(),
		Name:              name,
		VisualizationType: req.VisualizationType,
		Description:       req.Description,
		CreatedAt:         s.now(),
	}
	if err := def.SetCustomPoints(req.CustomPoints); err != nil {
		return nil, err
	}
	if err := st.AddActivity(def); err != nil {
		return nil, err
	}
	if err := s.store.State.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("saving tracker state: %w", err)
	}

	created, _ := st.Activity(name)
	out := *created
	return &out, nil
}

// UpdateActivity applies req to the activity called name. A rename migrates
// every log entry and the streak in the same save.
func (s *trackerService) UpdateActivity(ctx context.Context, name string, req contract.UpdateActivityRequest) (a *domain.Activity, err error) {
	fields := map[string]any{"name": name}
	done := track(ctx, s.observer, UseCaseUpdateActivity, fields)
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.loadState(ctx)
	resolved, ok := st.ResolveActivity(name)
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	def := ensureDefinition(st, resolved, s.now())
	if def == nil {
		return nil, domain.ErrActivityNotFound
	}

	if req.VisualizationType != nil {
		if err := def.SetVisualization(*req.VisualizationType); err != nil {
			return nil, err
		}
	}
	switch {
	case req.ClearCustomPoints:
		_ = def.SetCustomPoints(nil)
	case req.CustomPoints != nil:
		if err := def.SetCustomPoints(req.CustomPoints); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		def.Description = *req.Description
	}

	current := resolved
	if req.Name != nil {
		if err := st.RenameActivity(resolved, *req.Name); err != nil {
			return nil, err
		}
		current = domain.NormalizeActivityName(*req.Name)
		fields["new_name"] = current
	}

	if err := s.store.State.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("saving tracker state: %w", err)
	}
	updated, _ := st.Activity(current)
	out := *updated
	return &out, nil
}

func (s *trackerService) DeleteActivity(ctx context.Context, name string) (res *contract.DeleteActivityResult, err error) {
	fields := map[string]any{"name": name}
	done := track(ctx, s.observer, UseCaseDeleteActivity, fields)
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.loadState(ctx)
	resolved, ok := st.ResolveActivity(name)
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	removed, err := st.DeleteActivity(resolved)
	if err != nil {
		return nil, err
	}
	if err := s.store.State.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("saving tracker state: %w", err)
	}
	fields["logs_removed"] = removed
	return &contract.DeleteActivityResult{Activity: resolved, LogsRemoved: removed}, nil
}

// ListLogs returns entries newest first, optionally for one activity.
// A non-positive limit returns every entry.
func (s *trackerService) ListLogs(ctx context.Context, activity string, limit int) ([]domain.LogEntry, error) {
	s.mu.Lock()
	st := s.loadState(ctx)
	s.mu.Unlock()

	if activity == "" {
		return st.RecentLogs(limit), nil
	}
	resolved, ok := st.ResolveActivity(activity)
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	filtered := &domain.TrackerState{Logs: st.LogsFor(resolved)}
	return filtered.RecentLogs(limit), nil
}

// DeleteLog removes one entry and re-derives its activity's streak from the
// remaining log.
func (s *trackerService) DeleteLog(ctx context.Context, id string) (res *contract.DeleteLogResult, err error) {
	fields := map[string]any{"id": id}
	done := track(ctx, s.observer, UseCaseDeleteLog, fields)
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.loadState(ctx)
	entry, err := st.DeleteLog(id)
	if err != nil {
		return nil, err
	}
	streak := s.policy.Rebuild(st.Logs, entry.Activity)
	if st.HasActivity(entry.Activity) {
		st.Streaks.Set(entry.Activity, streak)
	}
	if err := s.store.State.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("saving tracker state: %w", err)
	}
	fields["activity"] = entry.Activity
	return &contract.DeleteLogResult{Entry: entry, CurrentStreak: streak}, nil
}

// RebuildStreaks replaces the streak map with one derived from the log.
// Defined activities without entries keep a zero counter.
func (s *trackerService) RebuildStreaks(ctx context.Context) (m domain.StreakMap, err error) {
	fields := map[string]any{"policy": s.policy.Name()}
	done := track(ctx, s.observer, UseCaseRebuild, fields)
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.loadState(ctx)
	st.Streaks = scoring.RebuildStreaks(s.policy, st.Logs, st.KnownActivityNames())
	if err := s.store.State.Save(ctx, st); err != nil {
		return domain.StreakMap{}, fmt.Errorf("saving tracker state: %w", err)
	}
	return st.Streaks, nil
}
