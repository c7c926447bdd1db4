package memory

import (
	"sync"

	"github.com/custodia-labs/profdir/internal/core/ports/driven"
)

// Ensure RecommendationStore implements the interface.
var _ driven.RecommendationStore = (*RecommendationStore)(nil)

// RecommendationStore is an in-memory set of recommended profile IDs.
// It lives as long as the process, which is the session.
type RecommendationStore struct {
	mu    sync.RWMutex
	ids   map[string]struct{}
	order []string
}

// NewRecommendationStore creates an empty store.
func NewRecommendationStore() *RecommendationStore {
	return &RecommendationStore{
		ids: make(map[string]struct{}),
	}
}

// Add inserts the ID, returning false if it was already present.
func (s *RecommendationStore) Add(profileID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[profileID]; ok {
		return false
	}
	s.ids[profileID] = struct{}{}
	s.order = append(s.order, profileID)
	return true
}

// Contains reports membership.
func (s *RecommendationStore) Contains(profileID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[profileID]
	return ok
}

// Count returns the set size.
func (s *RecommendationStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// List returns the IDs in insertion order.
func (s *RecommendationStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, len(s.order))
	copy(result, s.order)
	return result
}
