package services

import (
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
	"github.com/custodia-labs/profdir/internal/logger"
)

// Recommendations tracks which profiles were recommended this session.
// Recommending is monotonic: there is no way to take it back.
type Recommendations struct {
	store driven.RecommendationStore
}

// NewRecommendations creates a tracker backed by the given store.
func NewRecommendations(store driven.RecommendationStore) *Recommendations {
	return &Recommendations{store: store}
}

// Recommend adds the profile ID. It returns false if it was already present.
func (r *Recommendations) Recommend(profileID string) bool {
	added := r.store.Add(profileID)
	if added {
		logger.Debug("Recommended profile %s (%d total)", profileID, r.store.Count())
	}
	return added
}

// IsRecommended reports membership.
func (r *Recommendations) IsRecommended(profileID string) bool {
	return r.store.Contains(profileID)
}

// Count returns how many profiles were recommended.
func (r *Recommendations) Count() int {
	return r.store.Count()
}

// IDs returns the recommended profile IDs in the order they were added.
func (r *Recommendations) IDs() []string {
	return r.store.List()
}
