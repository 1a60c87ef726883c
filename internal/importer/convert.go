package importer

import (
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/scoring"
	"github.com/google/uuid"
)

// Restored holds the documents built from a backup. Nil Settings or Memory
// means the backup did not carry that section.
type Restored struct {
	State      *domain.TrackerState
	Settings   *domain.Settings
	Memory     *domain.UserMemory
	Transcript []domain.ChatMessage

	ActivitiesAdded   int
	ActivitiesSkipped int
	LogsAdded         int
	LogsSkipped       int
}

// Convert turns a validated backup into replacement documents. Call Validate
// first; Convert assumes the backup is valid. Streak counters are derived
// from the log with policy; the stored counters only contribute their keys.
func Convert(b *Backup, policy scoring.StreakPolicy, now time.Time) *Restored {
	st := &domain.TrackerState{}
	for _, a := range b.Activities {
		st.Activities = append(st.Activities, normalizeActivity(a, now))
	}
	for _, e := range b.Logs {
		st.Logs = append(st.Logs, normalizeLog(e))
	}
	st.Streaks = scoring.RebuildStreaks(policy, st.Logs, streakKeys(st, b.Streaks))

	out := &Restored{
		State:           st,
		Settings:        b.Settings,
		Memory:          b.Memory,
		Transcript:      append([]domain.ChatMessage(nil), b.Transcript...),
		ActivitiesAdded: len(st.Activities),
		LogsAdded:       len(st.Logs),
	}
	return out
}

// Merge adds the backup's activities and log entries to current without
// touching what is already there. Activities match by name, entries by ID.
// Settings, memory and transcript are not merged.
func Merge(current *domain.TrackerState, b *Backup, policy scoring.StreakPolicy, now time.Time) *Restored {
	st := &domain.TrackerState{
		Activities: append([]domain.Activity(nil), current.Activities...),
		Logs:       append([]domain.LogEntry(nil), current.Logs...),
	}
	out := &Restored{State: st}

	for _, a := range b.Activities {
		a = normalizeActivity(a, now)
		if _, ok := st.Activity(a.Name); ok {
			out.ActivitiesSkipped++
			continue
		}
		st.Activities = append(st.Activities, a)
		out.ActivitiesAdded++
	}

	seen := make(map[string]bool, len(st.Logs))
	for _, e := range st.Logs {
		seen[e.ID] = true
	}
	for _, e := range b.Logs {
		if seen[e.ID] {
			out.LogsSkipped++
			continue
		}
		seen[e.ID] = true
		st.Logs = append(st.Logs, normalizeLog(e))
		out.LogsAdded++
	}

	keys := streakKeys(st, current.Streaks)
	keys = append(keys, b.Streaks.Keys()...)
	st.Streaks = scoring.RebuildStreaks(policy, st.Logs, keys)
	return out
}

func normalizeActivity(a domain.Activity, now time.Time) domain.Activity {
	a.Name = domain.NormalizeActivityName(a.Name)
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.VisualizationType == "" {
		a.VisualizationType = domain.InferVisualization(a.Name)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	return a
}

func normalizeLog(e domain.LogEntry) domain.LogEntry {
	e.Activity = domain.NormalizeActivityName(e.Activity)
	return e
}

// streakKeys lists definition names followed by extra counter keys, so
// activities without entries keep a zero counter.
func streakKeys(st *domain.TrackerState, extra domain.StreakMap) []string {
	keys := make([]string, 0, len(st.Activities)+extra.Len())
	for _, a := range st.Activities {
		keys = append(keys, a.Name)
	}
	return append(keys, extra.Keys()...)
}
