package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Profile is a single professional record in the directory.
// Profiles are read once from a ProfileSource and never mutated afterwards.
type Profile struct {
	// ID is the unique, stable key within the collection.
	ID string

	// Name is the person's display name.
	Name string

	// Role is the job title shown under the name.
	Role string

	// Summary is a short free-text description.
	Summary string

	// Location is the city the person works from.
	Location string

	// Area is the professional category (e.g. "Tech", "Design").
	Area string

	// Skills is the ordered list of technical skills.
	Skills []string

	// SoftSkills is the ordered list of interpersonal skills.
	SoftSkills []string

	// Experiences lists work history, most relevant first.
	Experiences []Experience

	// Education lists academic background.
	Education []Education

	// Projects is optional.
	Projects []Project

	// Certifications is optional.
	Certifications []string

	// Languages is optional.
	Languages []Language

	// Interests is optional.
	Interests []string

	// Photo is an optional image reference (relative path or URL).
	Photo string
}

// Experience is one entry of a profile's work history.
type Experience struct {
	Role        string
	Employer    string
	Start       string
	End         string
	Description string
}

// Education is one academic entry.
type Education struct {
	Course      string
	Institution string
	Year        string
}

// Project is a portfolio entry.
type Project struct {
	Title       string
	Link        string
	Description string
}

// Language is a spoken language and the proficiency level.
type Language struct {
	Name  string
	Level string
}

// Initials returns up to two leading runes of the name parts,
// used when no photo can be shown.
func (p *Profile) Initials() string {
	var b strings.Builder
	for _, part := range strings.Split(p.Name, " ") {
		r, size := utf8.DecodeRuneInString(part)
		if size == 0 {
			continue
		}
		b.WriteRune(r)
	}
	initials := []rune(b.String())
	if len(initials) > 2 {
		initials = initials[:2]
	}
	return string(initials)
}

// HasPhoto reports whether the profile carries an image reference.
func (p *Profile) HasPhoto() bool {
	return strings.TrimSpace(p.Photo) != ""
}

// ValidateProfiles checks collection-level invariants:
// every profile has an ID and no ID appears twice.
func ValidateProfiles(profiles []Profile) error {
	seen := make(map[string]struct{}, len(profiles))
	for i := range profiles {
		id := profiles[i].ID
		if id == "" {
			return fmt.Errorf("profile at position %d: %w", i, ErrMissingID)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// FindProfile returns the profile with the given ID.
func FindProfile(profiles []Profile, id string) (*Profile, error) {
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile %q: %w", id, ErrNotFound)
}
