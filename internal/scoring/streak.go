package scoring

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/streakmind/internal/domain"
)

// Policy names accepted by PolicyByName.
const (
	PolicyDistinctDays = "distinct-days"
	PolicyContiguous   = "contiguous"
)

// StreakPolicy decides how a streak counter moves when a log is accepted,
// and how it is derived from history alone.
type StreakPolicy interface {
	Name() string
	// Advance returns the next counter for activity given the history before
	// the new entry on date. updated is false when the counter is unchanged.
	Advance(current int, history []domain.LogEntry, activity, date string) (next int, updated bool)
	// Rebuild derives the counter for activity from history.
	Rebuild(history []domain.LogEntry, activity string) int
}

// PolicyByName resolves a configured policy name. Empty selects distinct-days.
func PolicyByName(name string) (StreakPolicy, error) {
	switch name {
	case "", PolicyDistinctDays:
		return DistinctDaysPolicy{}, nil
	case PolicyContiguous:
		return ContiguousPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown streak policy %q", name)
	}
}

// ShouldIncrement reports whether no existing entry for activity is on date.
func ShouldIncrement(history []domain.LogEntry, activity, date string) bool {
	for _, e := range history {
		if e.Activity == activity && e.Date == date {
			return false
		}
	}
	return true
}

// DistinctDaysPolicy increments once per new calendar day for the activity.
// Gaps between days never reset the counter.
type DistinctDaysPolicy struct{}

func (DistinctDaysPolicy) Name() string { return PolicyDistinctDays }

func (DistinctDaysPolicy) Advance(current int, history []domain.LogEntry, activity, date string) (int, bool) {
	if !ShouldIncrement(history, activity, date) {
		return current, false
	}
	return current + 1, true
}

func (DistinctDaysPolicy) Rebuild(history []domain.LogEntry, activity string) int {
	return len(distinctDays(history, activity))
}

// ContiguousPolicy counts the run of consecutive calendar days ending at the
// latest logged day. A gap restarts the run at 1.
type ContiguousPolicy struct{}

func (ContiguousPolicy) Name() string { return PolicyContiguous }

func (p ContiguousPolicy) Advance(current int, history []domain.LogEntry, activity, date string) (int, bool) {
	if !ShouldIncrement(history, activity, date) {
		return current, false
	}
	combined := make([]domain.LogEntry, 0, len(history)+1)
	combined = append(combined, history...)
	combined = append(combined, domain.LogEntry{Activity: activity, Date: date})
	next := p.Rebuild(combined, activity)
	return next, next != current
}

func (ContiguousPolicy) Rebuild(history []domain.LogEntry, activity string) int {
	days := distinctDays(history, activity)
	if len(days) == 0 {
		return 0
	}
	run := 1
	for i := len(days) - 1; i > 0; i-- {
		if domain.ShiftDay(days[i], -1) != days[i-1] {
			break
		}
		run++
	}
	return run
}

// distinctDays returns the sorted set of dates logged for activity.
func distinctDays(history []domain.LogEntry, activity string) []string {
	seen := make(map[string]bool)
	var days []string
	for _, e := range history {
		if e.Activity != activity || seen[e.Date] {
			continue
		}
		seen[e.Date] = true
		days = append(days, e.Date)
	}
	sort.Strings(days)
	return days
}

// RebuildStreaks derives a streak map from the log. Keys keep the order of
// names, then any logged activity not in names in first-logged order.
// Names without entries get a zero counter.
func RebuildStreaks(policy StreakPolicy, history []domain.LogEntry, names []string) domain.StreakMap {
	var m domain.StreakMap
	for _, n := range names {
		m.Set(n, policy.Rebuild(history, n))
	}
	for _, e := range history {
		if !m.Has(e.Activity) {
			m.Set(e.Activity, policy.Rebuild(history, e.Activity))
		}
	}
	return m
}
