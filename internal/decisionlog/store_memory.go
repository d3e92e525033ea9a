package decisionlog

import (
	"context"
	"sync"

	"guardian/internal/decision"
)

// InMemoryStore keeps the history in process memory, newest first.
type InMemoryStore struct {
	mu        sync.RWMutex
	decisions []decision.Decision
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Record(_ context.Context, d decision.Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decisions = append([]decision.Decision{d}, s.decisions...)
	return nil
}

func (s *InMemoryStore) History(_ context.Context) ([]decision.Decision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]decision.Decision{}, s.decisions...), nil
}
