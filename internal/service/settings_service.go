package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/streakmind/internal/domain"
)

type settingsService struct {
	*base
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings := s.loadSettings(ctx)
	return &settings, nil
}

// Update decodes patch over the current settings, so absent keys keep their
// value at every nesting level.
func (s *settingsService) Update(ctx context.Context, patch json.RawMessage) (out *domain.Settings, err error) {
	done := track(ctx, s.observer, UseCaseUpdateSettings, nil)
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.loadSettings(ctx)
	if len(patch) > 0 {
		if err := json.Unmarshal(patch, &settings); err != nil {
			return nil, domain.WrapError(domain.ErrCodeInvalid, domain.ErrInvalidSettings.Message, err)
		}
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Settings.Save(ctx, &settings); err != nil {
		return nil, fmt.Errorf("saving settings: %w", err)
	}
	return &settings, nil
}

func (s *settingsService) Reset(ctx context.Context) (*domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings := domain.DefaultSettings()
	if err := s.store.Settings.Save(ctx, &settings); err != nil {
		return nil, fmt.Errorf("saving settings: %w", err)
	}
	return &settings, nil
}
