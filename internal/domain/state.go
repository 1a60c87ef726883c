package domain

import (
	"sort"
	"strings"
)

// TrackerState is the whole-document snapshot of activity definitions, the
// activity log and the streak map. It is loaded, mutated in memory and saved
// back as one unit.
type TrackerState struct {
	Activities []Activity `json:"activities"`
	Logs       []LogEntry `json:"logs"`
	Streaks    StreakMap  `json:"streaks"`
}

// Activity returns the definition for name.
func (s *TrackerState) Activity(name string) (*Activity, bool) {
	for i := range s.Activities {
		if s.Activities[i].Name == name {
			return &s.Activities[i], true
		}
	}
	return nil, false
}

// HasActivity reports whether name is a defined activity or a streak key.
func (s *TrackerState) HasActivity(name string) bool {
	if _, ok := s.Activity(name); ok {
		return true
	}
	return s.Streaks.Has(name)
}

// KnownActivityNames returns definition names in insertion order, followed by
// streak keys that have no definition.
func (s *TrackerState) KnownActivityNames() []string {
	seen := make(map[string]bool, len(s.Activities))
	names := make([]string, 0, len(s.Activities)+s.Streaks.Len())
	for _, a := range s.Activities {
		if !seen[a.Name] {
			seen[a.Name] = true
			names = append(names, a.Name)
		}
	}
	for _, k := range s.Streaks.Keys() {
		if !seen[k] {
			seen[k] = true
			names = append(names, k)
		}
	}
	return names
}

// ResolveActivity maps a user-supplied name to a known activity: exact match
// first, then a unique case-insensitive match.
func (s *TrackerState) ResolveActivity(name string) (string, bool) {
	name = NormalizeActivityName(name)
	known := s.KnownActivityNames()
	for _, k := range known {
		if k == name {
			return k, true
		}
	}
	var match string
	for _, k := range known {
		if strings.EqualFold(k, name) {
			if match != "" {
				return "", false
			}
			match = k
		}
	}
	return match, match != ""
}

// AddActivity appends a definition and initializes its streak to 0.
func (s *TrackerState) AddActivity(a Activity) error {
	a.Name = NormalizeActivityName(a.Name)
	if a.Name == "" {
		return ErrInvalidName
	}
	if _, ok := s.Activity(a.Name); ok {
		return ErrActivityExists
	}
	if a.VisualizationType == "" {
		a.VisualizationType = InferVisualization(a.Name)
	}
	if !ValidVisualizations[a.VisualizationType] {
		return ErrInvalidViz
	}
	if a.CustomPointsPerUnit != nil && *a.CustomPointsPerUnit < 0 {
		return ErrInvalidPoints
	}
	s.Activities = append(s.Activities, a)
	if !s.Streaks.Has(a.Name) {
		s.Streaks.Set(a.Name, 0)
	}
	return nil
}

// RenameActivity renames a definition and migrates every log entry and the
// streak counter to the new name.
func (s *TrackerState) RenameActivity(oldName, newName string) error {
	newName = NormalizeActivityName(newName)
	if newName == "" {
		return ErrInvalidName
	}
	if !s.HasActivity(oldName) {
		return ErrActivityNotFound
	}
	if oldName == newName {
		return nil
	}
	if s.HasActivity(newName) {
		return ErrActivityExists
	}
	if a, ok := s.Activity(oldName); ok {
		a.Name = newName
	}
	for i := range s.Logs {
		if s.Logs[i].Activity == oldName {
			s.Logs[i].Activity = newName
		}
	}
	s.Streaks.Rename(oldName, newName)
	return nil
}

// DeleteActivity removes the definition, its streak and all its log entries.
// Returns the number of removed log entries.
func (s *TrackerState) DeleteActivity(name string) (int, error) {
	if !s.HasActivity(name) {
		return 0, ErrActivityNotFound
	}
	for i := range s.Activities {
		if s.Activities[i].Name == name {
			s.Activities = append(s.Activities[:i:i], s.Activities[i+1:]...)
			break
		}
	}
	s.Streaks.Delete(name)

	kept := s.Logs[:0:0]
	removed := 0
	for _, e := range s.Logs {
		if e.Activity == name {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.Logs = kept
	return removed, nil
}

// AppendLog adds an accepted entry to the ledger.
func (s *TrackerState) AppendLog(e LogEntry) {
	s.Logs = append(s.Logs, e)
}

// DeleteLog removes the entry with id and returns it.
func (s *TrackerState) DeleteLog(id string) (LogEntry, error) {
	for i, e := range s.Logs {
		if e.ID == id {
			s.Logs = append(s.Logs[:i:i], s.Logs[i+1:]...)
			return e, nil
		}
	}
	return LogEntry{}, ErrLogNotFound
}

// LogsFor returns entries for activity in ledger order.
func (s *TrackerState) LogsFor(activity string) []LogEntry {
	var out []LogEntry
	for _, e := range s.Logs {
		if e.Activity == activity {
			out = append(out, e)
		}
	}
	return out
}

// TotalPoints sums points over the log.
func (s *TrackerState) TotalPoints() int {
	total := 0
	for _, e := range s.Logs {
		total += e.Points
	}
	return total
}

// RecentLogs returns up to limit entries, newest timestamp first.
// A non-positive limit returns every entry.
func (s *TrackerState) RecentLogs(limit int) []LogEntry {
	out := make([]LogEntry, len(s.Logs))
	copy(out, s.Logs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
