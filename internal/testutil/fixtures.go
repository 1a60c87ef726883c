package testutil

import (
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/google/uuid"
)

// FixedNow is the reference instant used across tests.
var FixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// FixedClock returns a clock function pinned to t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithCustomPoints(v float64) ActivityOption {
	return func(a *domain.Activity) {
		a.CustomPointsPerUnit = &v
	}
}

func WithVisualization(v domain.VisualizationType) ActivityOption {
	return func(a *domain.Activity) {
		a.VisualizationType = v
	}
}

func WithDescription(d string) ActivityOption {
	return func(a *domain.Activity) {
		a.Description = d
	}
}

func NewTestActivity(name string, opts ...ActivityOption) domain.Activity {
	a := domain.Activity{
		ID:                uuid.New().String(),
		Name:              name,
		VisualizationType: domain.InferVisualization(name),
		CreatedAt:         FixedNow,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Log entry options
type LogOption func(*domain.LogEntry)

func WithAmount(amount float64, unit domain.Unit) LogOption {
	return func(e *domain.LogEntry) {
		e.Amount = amount
		e.Unit = unit
	}
}

func WithPoints(p int) LogOption {
	return func(e *domain.LogEntry) {
		e.Points = p
	}
}

func WithTimestamp(ts time.Time) LogOption {
	return func(e *domain.LogEntry) {
		e.Timestamp = ts
	}
}

func NewTestLog(activity, date string, opts ...LogOption) domain.LogEntry {
	e := domain.LogEntry{
		ID:        uuid.New().String(),
		Activity:  activity,
		Amount:    1,
		Unit:      domain.UnitSession,
		Date:      date,
		Message:   "did " + activity,
		Timestamp: FixedNow,
		Points:    5,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func NewTestMessage(role domain.Role, text string, ts time.Time) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Message:   text,
		Timestamp: ts,
	}
}
