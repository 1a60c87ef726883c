package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/streakmind/internal/domain"
)

type memoryService struct {
	*base
}

func (s *memoryService) Get(ctx context.Context) (*domain.UserMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadMemory(ctx), nil
}

func (s *memoryService) Clear(ctx context.Context, fields ...string) (*domain.UserMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.loadMemory(ctx)
	if err := m.Clear(fields...); err != nil {
		return nil, err
	}
	if err := s.save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *memoryService) RemoveItem(ctx context.Context, category, item string) (*domain.UserMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.loadMemory(ctx)
	removed, err := m.Forget(category, item)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, domain.ErrMemoryItemAbsent
	}
	if err := s.save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *memoryService) save(ctx context.Context, m *domain.UserMemory) error {
	m.UpdatedAt = s.now()
	if err := s.store.Memory.Save(ctx, m); err != nil {
		return fmt.Errorf("saving memory: %w", err)
	}
	return nil
}
