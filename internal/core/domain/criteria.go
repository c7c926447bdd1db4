package domain

import "strings"

// Criteria holds the active filter selections.
// An empty field means "any" and does not restrict the result.
type Criteria struct {
	// Search is matched case-insensitively against name, role and summary.
	Search string

	// Area must equal the profile's area exactly.
	Area string

	// City must equal the profile's location exactly.
	City string

	// Technology is matched case-insensitively as a substring of any skill.
	Technology string
}

// IsActive reports whether any criterion restricts the result.
func (c Criteria) IsActive() bool {
	return c.Search != "" || c.Area != "" || c.City != "" || c.Technology != ""
}

// Matches reports whether a profile satisfies every criterion.
func (c Criteria) Matches(p *Profile) bool {
	return c.matchesText(p) && c.matchesArea(p) && c.matchesCity(p) && c.matchesTechnology(p)
}

func (c Criteria) matchesText(p *Profile) bool {
	if c.Search == "" {
		return true
	}
	term := strings.ToLower(c.Search)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Role), term) ||
		strings.Contains(strings.ToLower(p.Summary), term)
}

func (c Criteria) matchesArea(p *Profile) bool {
	return c.Area == "" || p.Area == c.Area
}

func (c Criteria) matchesCity(p *Profile) bool {
	return c.City == "" || p.Location == c.City
}

func (c Criteria) matchesTechnology(p *Profile) bool {
	if c.Technology == "" {
		return true
	}
	tech := strings.ToLower(c.Technology)
	for _, skill := range p.Skills {
		if strings.Contains(strings.ToLower(skill), tech) {
			return true
		}
	}
	return false
}

// Facets are the distinct filter options derived from a collection.
// Each list is de-duplicated and sorted ascending.
type Facets struct {
	Areas        []string
	Cities       []string
	Technologies []string
}
