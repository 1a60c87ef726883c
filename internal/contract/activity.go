package contract

import "github.com/alexanderramin/streakmind/internal/domain"

// CreateActivityRequest defines a new activity.
type CreateActivityRequest struct {
	Name              string                   `json:"name"`
	CustomPoints      *float64                 `json:"customPoints,omitempty"`
	VisualizationType domain.VisualizationType `json:"visualizationType,omitempty"`
	Description       string                   `json:"description,omitempty"`
}

// UpdateActivityRequest changes an existing activity. Nil fields are left
// untouched; ClearCustomPoints removes an override.
type UpdateActivityRequest struct {
	Name              *string                   `json:"name,omitempty"`
	VisualizationType *domain.VisualizationType `json:"visualizationType,omitempty"`
	CustomPoints      *float64                  `json:"customPoints,omitempty"`
	ClearCustomPoints bool                      `json:"clearCustomPoints,omitempty"`
	Description       *string                   `json:"description,omitempty"`
}

// DeleteActivityResult reports what a cascading delete removed.
type DeleteActivityResult struct {
	Activity    string `json:"activity"`
	LogsRemoved int    `json:"logsRemoved"`
}

// DeleteLogResult reports a removed entry and the re-derived streak.
type DeleteLogResult struct {
	Entry         domain.LogEntry `json:"entry"`
	CurrentStreak int             `json:"currentStreak"`
}
