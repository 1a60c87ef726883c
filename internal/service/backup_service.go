package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/streakmind/internal/contract"
	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/alexanderramin/streakmind/internal/importer"
)

type backupService struct {
	*base
}

func (s *backupService) Export(ctx context.Context) (*importer.Backup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.loadState(ctx)
	settings := s.loadSettings(ctx)
	return &importer.Backup{
		ExportedAt: s.now(),
		Activities: st.Activities,
		Logs:       st.Logs,
		Streaks:    st.Streaks,
		Settings:   &settings,
		Memory:     s.loadMemory(ctx),
		Transcript: s.loadTranscript(ctx),
	}, nil
}

func (s *backupService) Import(ctx context.Context, b *importer.Backup, mode contract.ImportMode) (res *contract.ImportResult, err error) {
	fields := map[string]any{"mode": string(mode)}
	done := track(ctx, s.observer, UseCaseImport, fields)
	defer func() { done(err) }()

	if b == nil {
		return nil, domain.NewError(domain.ErrCodeInvalid, "backup is required")
	}
	switch mode {
	case "", contract.ImportReplace:
		mode = contract.ImportReplace
	case contract.ImportMerge:
	default:
		return nil, domain.NewError(domain.ErrCodeInvalid, fmt.Sprintf("unknown import mode %q", mode))
	}
	if errs := importer.Validate(b); len(errs) > 0 {
		return nil, validationError(errs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var r *importer.Restored
	if mode == contract.ImportMerge {
		r = importer.Merge(s.loadState(ctx), b, s.policy, s.now())
	} else {
		r = importer.Convert(b, s.policy, s.now())
	}

	if err := s.store.State.Save(ctx, r.State); err != nil {
		return nil, fmt.Errorf("saving tracker state: %w", err)
	}
	res = &contract.ImportResult{
		Mode:              mode,
		ActivitiesAdded:   r.ActivitiesAdded,
		ActivitiesSkipped: r.ActivitiesSkipped,
		LogsAdded:         r.LogsAdded,
		LogsSkipped:       r.LogsSkipped,
		Streaks:           r.State.Streaks,
	}
	if mode == contract.ImportMerge {
		fields["logs_added"] = r.LogsAdded
		return res, nil
	}

	if r.Settings != nil {
		if err := s.store.Settings.Save(ctx, r.Settings); err != nil {
			return nil, fmt.Errorf("saving settings: %w", err)
		}
		res.SettingsRestored = true
	}
	if r.Memory != nil {
		if err := s.store.Memory.Save(ctx, r.Memory); err != nil {
			return nil, fmt.Errorf("saving memory: %w", err)
		}
		res.MemoryRestored = true
	}
	if err := s.store.Transcript.Save(ctx, r.Transcript); err != nil {
		return nil, fmt.Errorf("saving transcript: %w", err)
	}
	res.TranscriptRestored = true
	fields["logs_added"] = r.LogsAdded
	return res, nil
}

func validationError(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d problems:", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - " + e.Error())
	}
	return domain.WrapError(domain.ErrCodeInvalid, "backup validation failed", fmt.Errorf("%s", b.String()))
}
