package domain

import (
	"strings"
	"time"
)

// Activity is a named, trackable habit. Name is the only key used by logs
// and streaks.
type Activity struct {
	ID                  string            `json:"id" yaml:"id"`
	Name                string            `json:"name" yaml:"name"`
	CustomPointsPerUnit *float64          `json:"customPointsPerUnit,omitempty" yaml:"customPointsPerUnit,omitempty"`
	VisualizationType   VisualizationType `json:"visualizationType" yaml:"visualizationType"`
	Description         string            `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt           time.Time         `json:"createdAt" yaml:"createdAt"`
}

// HasCustomPoints reports whether a per-unit override is set.
func (a *Activity) HasCustomPoints() bool {
	return a.CustomPointsPerUnit != nil
}

// SetCustomPoints sets or clears the per-unit override.
func (a *Activity) SetCustomPoints(points *float64) error {
	if points != nil && *points < 0 {
		return ErrInvalidPoints
	}
	if points == nil {
		a.CustomPointsPerUnit = nil
		return nil
	}
	v := *points
	a.CustomPointsPerUnit = &v
	return nil
}

// SetVisualization validates and applies a visualization hint.
func (a *Activity) SetVisualization(v VisualizationType) error {
	if !ValidVisualizations[v] {
		return ErrInvalidViz
	}
	a.VisualizationType = v
	return nil
}

// InferVisualization picks a dashboard hint from keywords in the name.
func InferVisualization(name string) VisualizationType {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "coding"), strings.Contains(n, "code"):
		return VizHeatmap
	case strings.Contains(n, "gym"), strings.Contains(n, "workout"):
		return VizProgress
	case strings.Contains(n, "sleep"):
		return VizBar
	default:
		return VizPie
	}
}

// NormalizeActivityName trims surrounding whitespace and collapses inner runs.
func NormalizeActivityName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
