package pick

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and dry runs.
type MemoryStore struct {
	mu    sync.RWMutex
	picks map[string]Pick
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{picks: make(map[string]Pick)}
}

func (s *MemoryStore) Put(_ context.Context, p Pick) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.picks[p.ID] = p
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Pick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.picks[id]
	if !ok {
		return Pick{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) All(_ context.Context) ([]Pick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Pick, 0, len(s.picks))
	for _, p := range s.picks {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.picks = make(map[string]Pick)
	return nil
}
