package app

import (
	"sync"

	"bftcg/internal/domain"
)

// Store is the match registry abstraction. The engine itself never touches a
// registry; callers inject a Store into the Service and may back it with
// whatever persistence they need.
type Store interface {
	Get(id string) (*domain.MatchState, bool)
	Put(id string, state *domain.MatchState)
	Delete(id string)
}

// MemoryStore is a mutex-guarded in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	matches map[string]*domain.MatchState
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{matches: make(map[string]*domain.MatchState)}
}

// Get returns the match for id.
func (s *MemoryStore) Get(id string) (*domain.MatchState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	return m, ok
}

// Put stores the match under id.
func (s *MemoryStore) Put(id string, state *domain.MatchState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[id] = state
}

// Delete removes the match for id.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
}
