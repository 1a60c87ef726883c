package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
)

// Validate checks a backup for errors before conversion.
// Returns every problem found, not just the first.
func Validate(b *Backup) []error {
	var errs []error

	names := make(map[string]bool, len(b.Activities))
	errs = append(errs, validateActivities(b.Activities, names)...)
	errs = append(errs, validateLogs(b.Logs)...)
	errs = append(errs, validateTranscript(b.Transcript)...)

	if b.Settings != nil {
		if err := b.Settings.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("settings: %w", err))
		}
	}
	if b.Memory != nil && b.Memory.ID == "" {
		errs = append(errs, fmt.Errorf("memory.id is required"))
	}

	return errs
}

func validateActivities(acts []domain.Activity, names map[string]bool) []error {
	var errs []error
	for i, a := range acts {
		prefix := fmt.Sprintf("activities[%d]", i)
		name := domain.NormalizeActivityName(a.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
			continue
		}
		if names[name] {
			errs = append(errs, fmt.Errorf("%s: duplicate activity %q", prefix, name))
		}
		names[name] = true

		if a.VisualizationType != "" && !domain.ValidVisualizations[a.VisualizationType] {
			errs = append(errs, fmt.Errorf("%s.visualizationType: invalid value %q", prefix, a.VisualizationType))
		}
		if a.CustomPointsPerUnit != nil && *a.CustomPointsPerUnit < 0 {
			errs = append(errs, fmt.Errorf("%s.customPointsPerUnit must be non-negative", prefix))
		}
	}
	return errs
}

func validateLogs(logs []domain.LogEntry) []error {
	var errs []error
	ids := make(map[string]bool, len(logs))
	for i, e := range logs {
		prefix := fmt.Sprintf("logs[%d]", i)
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[e.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, e.ID))
		}
		ids[e.ID] = true

		if domain.NormalizeActivityName(e.Activity) == "" {
			errs = append(errs, fmt.Errorf("%s.activity is required", prefix))
		}
		if _, err := time.Parse(domain.DateLayout, e.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, e.Date))
		}
		if e.Amount < 0 {
			errs = append(errs, fmt.Errorf("%s.amount must be non-negative", prefix))
		}
		if !domain.ValidUnits[e.Unit] {
			errs = append(errs, fmt.Errorf("%s.unit: invalid value %q", prefix, e.Unit))
		}
		if e.Points < 0 {
			errs = append(errs, fmt.Errorf("%s.points must be non-negative", prefix))
		}
	}
	return errs
}

func validateTranscript(msgs []domain.ChatMessage) []error {
	var errs []error
	ids := make(map[string]bool, len(msgs))
	for i, m := range msgs {
		prefix := fmt.Sprintf("transcript[%d]", i)
		if m.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[m.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, m.ID))
		}
		ids[m.ID] = true

		switch m.Role {
		case domain.RoleUser, domain.RoleAssistant:
		default:
			errs = append(errs, fmt.Errorf("%s.role: invalid value %q", prefix, m.Role))
		}
	}
	return errs
}
