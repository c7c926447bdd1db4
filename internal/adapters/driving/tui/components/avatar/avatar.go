// Package avatar renders a profile's photo reference or initials badge.
package avatar

import (
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/logger"
)

// Resolver turns a photo reference into a displayable location.
type Resolver interface {
	Resolve(ref string) (string, error)
}

// Avatar remembers, per profile, whether the photo failed to resolve so
// a broken reference is tried once and then shown as initials.
type Avatar struct {
	styles   *styles.Styles
	resolver Resolver
	failed   map[string]bool
	resolved map[string]string
}

// New creates an avatar renderer. A nil resolver always falls back to initials.
func New(s *styles.Styles, resolver Resolver) *Avatar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Avatar{
		styles:   s,
		resolver: resolver,
		failed:   make(map[string]bool),
		resolved: make(map[string]string),
	}
}

// Photo returns the resolved photo location, or false when the profile
// has no photo or it failed to resolve.
func (a *Avatar) Photo(p *domain.Profile) (string, bool) {
	if p == nil || !p.HasPhoto() || a.resolver == nil || a.failed[p.ID] {
		return "", false
	}
	if loc, ok := a.resolved[p.ID]; ok {
		return loc, true
	}
	loc, err := a.resolver.Resolve(p.Photo)
	if err != nil {
		logger.Debug("Photo for %s unavailable: %v", p.ID, err)
		a.failed[p.ID] = true
		return "", false
	}
	a.resolved[p.ID] = loc
	return loc, true
}

// Badge renders the initials badge.
func (a *Avatar) Badge(p *domain.Profile) string {
	if p == nil {
		return ""
	}
	initials := p.Initials()
	if initials == "" {
		initials = "?"
	}
	return a.styles.Avatar.Render(initials)
}

// Failed reports whether the profile's photo failed to resolve.
func (a *Avatar) Failed(profileID string) bool {
	return a.failed[profileID]
}

// Reset forgets every remembered result.
func (a *Avatar) Reset() {
	a.failed = make(map[string]bool)
	a.resolved = make(map[string]string)
}
