package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/streakmind/internal/domain"
)

type transcriptService struct {
	*base
}

func (s *transcriptService) List(ctx context.Context) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs, err := s.store.Transcript.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading transcript: %w", err)
	}
	return msgs, nil
}

func (s *transcriptService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.loadTranscript(ctx)
	for i, m := range msgs {
		if m.ID != id {
			continue
		}
		msgs = append(msgs[:i:i], msgs[i+1:]...)
		if err := s.store.Transcript.Save(ctx, msgs); err != nil {
			return fmt.Errorf("saving transcript: %w", err)
		}
		return nil
	}
	return domain.ErrMessageNotFound
}

// Clear empties the transcript. The activity log is untouched.
func (s *transcriptService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Transcript.Save(ctx, nil); err != nil {
		return fmt.Errorf("clearing transcript: %w", err)
	}
	return nil
}
