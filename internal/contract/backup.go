package contract

import "github.com/alexanderramin/streakmind/internal/domain"

// ImportMode selects how a backup is applied.
type ImportMode string

const (
	// ImportReplace overwrites the tracker, transcript and any settings or
	// memory carried by the backup.
	ImportReplace ImportMode = "replace"
	// ImportMerge adds unseen activities and log entries to the current
	// tracker and leaves every other document alone.
	ImportMerge ImportMode = "merge"
)

// ImportResult reports what a restore changed.
type ImportResult struct {
	Mode               ImportMode       `json:"mode"`
	ActivitiesAdded    int              `json:"activitiesAdded"`
	ActivitiesSkipped  int              `json:"activitiesSkipped"`
	LogsAdded          int              `json:"logsAdded"`
	LogsSkipped        int              `json:"logsSkipped"`
	SettingsRestored   bool             `json:"settingsRestored"`
	MemoryRestored     bool             `json:"memoryRestored"`
	TranscriptRestored bool             `json:"transcriptRestored"`
	Streaks            domain.StreakMap `json:"streaks"`
}
