package contract

import "github.com/alexanderramin/streakmind/internal/domain"

// MaxStatsLogs caps the recent-activity list returned with stats.
const MaxStatsLogs = 50

// Stats is the dashboard snapshot of the tracker.
type Stats struct {
	TotalPoints int               `json:"totalPoints" yaml:"totalPoints"`
	Streaks     domain.StreakMap  `json:"streaks" yaml:"streaks"`
	Badges      []domain.Badge    `json:"badges" yaml:"badges"`
	Logs        []domain.LogEntry `json:"logs" yaml:"logs"`
	Activities  []domain.Activity `json:"activities" yaml:"activities"`
}
