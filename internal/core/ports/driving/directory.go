package driving

import "github.com/custodia-labs/profdir/internal/core/domain"

// DirectoryService exposes the read-only profile collection.
type DirectoryService interface {
	// Profiles returns the full collection in source order.
	Profiles() []domain.Profile

	// Count returns the collection size.
	Count() int

	// Get returns a profile by ID.
	Get(id string) (*domain.Profile, error)

	// Filter returns the profiles matching the criteria, in source order.
	Filter(criteria domain.Criteria) []domain.Profile

	// Facets returns the distinct areas, cities and technologies.
	Facets() domain.Facets
}
