package services

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
	"github.com/custodia-labs/profdir/internal/logger"
)

// Ensure Directory implements the interface.
var _ driving.DirectoryService = (*Directory)(nil)

// Directory holds the profile collection and its derived facets.
// The collection is replaced wholesale, never edited in place, so facets
// are computed once per snapshot rather than on every filter change.
type Directory struct {
	mu       sync.RWMutex
	profiles []domain.Profile
	facets   domain.Facets
}

// NewDirectory creates a directory over the given collection.
func NewDirectory(profiles []domain.Profile) (*Directory, error) {
	d := &Directory{}
	if err := d.Replace(profiles); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadDirectory reads the collection from a source.
func LoadDirectory(ctx context.Context, source driven.ProfileSource) (*Directory, error) {
	d := &Directory{}
	if err := d.Reload(ctx, source); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload reads the source again and swaps in the new snapshot.
// On error the previous snapshot stays in place.
func (d *Directory) Reload(ctx context.Context, source driven.ProfileSource) error {
	profiles, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading profiles from %s: %w", source.Location(), err)
	}
	logger.Debug("Loaded %d profiles from %s", len(profiles), source.Location())
	return d.Replace(profiles)
}

// Replace validates and installs a new snapshot, recomputing facets.
func (d *Directory) Replace(profiles []domain.Profile) error {
	if err := domain.ValidateProfiles(profiles); err != nil {
		return err
	}

	snapshot := slices.Clone(profiles)
	facets := DeriveFacets(snapshot)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.profiles = snapshot
	d.facets = facets
	logger.Debug("Facets recomputed: %d areas, %d cities, %d technologies",
		len(facets.Areas), len(facets.Cities), len(facets.Technologies))
	return nil
}

// Profiles returns the full collection in source order.
func (d *Directory) Profiles() []domain.Profile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.profiles)
}

// Count returns the collection size.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.profiles)
}

// Get returns a copy of the profile with the given ID.
func (d *Directory) Get(id string) (*domain.Profile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, err := domain.FindProfile(d.profiles, id)
	if err != nil {
		return nil, err
	}
	cp := *p
	return &cp, nil
}

// Filter returns the profiles matching the criteria.
func (d *Directory) Filter(criteria domain.Criteria) []domain.Profile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return FilterProfiles(d.profiles, criteria)
}

// Facets returns the facets of the current snapshot.
func (d *Directory) Facets() domain.Facets {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return domain.Facets{
		Areas:        slices.Clone(d.facets.Areas),
		Cities:       slices.Clone(d.facets.Cities),
		Technologies: slices.Clone(d.facets.Technologies),
	}
}

// FilterProfiles keeps the profiles that satisfy every criterion,
// preserving their relative order. The result is never nil.
func FilterProfiles(profiles []domain.Profile, criteria domain.Criteria) []domain.Profile {
	result := make([]domain.Profile, 0, len(profiles))
	for i := range profiles {
		if criteria.Matches(&profiles[i]) {
			result = append(result, profiles[i])
		}
	}
	return result
}

// DeriveFacets collects the distinct areas, locations and skills,
// each sorted ascending.
func DeriveFacets(profiles []domain.Profile) domain.Facets {
	areas := make([]string, 0, len(profiles))
	cities := make([]string, 0, len(profiles))
	var techs []string
	for i := range profiles {
		areas = append(areas, profiles[i].Area)
		cities = append(cities, profiles[i].Location)
		techs = append(techs, profiles[i].Skills...)
	}
	return domain.Facets{
		Areas:        distinctSorted(areas),
		Cities:       distinctSorted(cities),
		Technologies: distinctSorted(techs),
	}
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}
