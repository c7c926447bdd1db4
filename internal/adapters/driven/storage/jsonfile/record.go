package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/profdir/internal/core/domain"
)

// Record is the JSON encoding of a profile.
type Record struct {
	ID             FlexString   `json:"id"`
	Name           string       `json:"name"`
	Role           string       `json:"role"`
	Summary        string       `json:"summary"`
	Location       string       `json:"location"`
	Area           string       `json:"area"`
	Skills         []string     `json:"skills"`
	SoftSkills     []string     `json:"softSkills,omitempty"`
	Experiences    []Experience `json:"experiences,omitempty"`
	Education      []Education  `json:"education,omitempty"`
	Projects       []Project    `json:"projects,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
	Languages      []Language   `json:"languages,omitempty"`
	Interests      []string     `json:"interests,omitempty"`
	Photo          string       `json:"photo,omitempty"`
}

// Experience is the JSON encoding of a work history entry.
type Experience struct {
	Role        string `json:"role"`
	Employer    string `json:"employer"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description,omitempty"`
}

// Education is the JSON encoding of an academic entry.
type Education struct {
	Course      string     `json:"course"`
	Institution string     `json:"institution"`
	Year        FlexString `json:"year"`
}

// Project is the JSON encoding of a portfolio entry.
type Project struct {
	Title       string `json:"title"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description,omitempty"`
}

// Language is the JSON encoding of a spoken language.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// FlexString accepts a JSON string or number. Identifiers and years
// show up as either in hand-written data files.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

// ToDomain converts a record to a domain profile.
func (r Record) ToDomain() domain.Profile {
	p := domain.Profile{
		ID:             string(r.ID),
		Name:           r.Name,
		Role:           r.Role,
		Summary:        r.Summary,
		Location:       r.Location,
		Area:           r.Area,
		Skills:         r.Skills,
		SoftSkills:     r.SoftSkills,
		Certifications: r.Certifications,
		Interests:      r.Interests,
		Photo:          r.Photo,
	}
	p.Experiences = ExperiencesToDomain(r.Experiences)
	p.Education = EducationToDomain(r.Education)
	p.Projects = ProjectsToDomain(r.Projects)
	p.Languages = LanguagesToDomain(r.Languages)
	return p
}

// FromDomain converts a domain profile to a record.
func FromDomain(p domain.Profile) Record {
	return Record{
		ID:             FlexString(p.ID),
		Name:           p.Name,
		Role:           p.Role,
		Summary:        p.Summary,
		Location:       p.Location,
		Area:           p.Area,
		Skills:         p.Skills,
		SoftSkills:     p.SoftSkills,
		Experiences:    ExperiencesFromDomain(p.Experiences),
		Education:      EducationFromDomain(p.Education),
		Projects:       ProjectsFromDomain(p.Projects),
		Certifications: p.Certifications,
		Languages:      LanguagesFromDomain(p.Languages),
		Interests:      p.Interests,
		Photo:          p.Photo,
	}
}

// ExperiencesToDomain converts work history records.
func ExperiencesToDomain(in []Experience) []domain.Experience {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Experience, len(in))
	for i, e := range in {
		out[i] = domain.Experience(e)
	}
	return out
}

// ExperiencesFromDomain converts domain work history.
func ExperiencesFromDomain(in []domain.Experience) []Experience {
	if len(in) == 0 {
		return nil
	}
	out := make([]Experience, len(in))
	for i, e := range in {
		out[i] = Experience(e)
	}
	return out
}

// EducationToDomain converts academic records.
func EducationToDomain(in []Education) []domain.Education {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Education, len(in))
	for i, e := range in {
		out[i] = domain.Education{Course: e.Course, Institution: e.Institution, Year: string(e.Year)}
	}
	return out
}

// EducationFromDomain converts domain academic entries.
func EducationFromDomain(in []domain.Education) []Education {
	if len(in) == 0 {
		return nil
	}
	out := make([]Education, len(in))
	for i, e := range in {
		out[i] = Education{Course: e.Course, Institution: e.Institution, Year: FlexString(e.Year)}
	}
	return out
}

// ProjectsToDomain converts portfolio records.
func ProjectsToDomain(in []Project) []domain.Project {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Project, len(in))
	for i, p := range in {
		out[i] = domain.Project(p)
	}
	return out
}

// ProjectsFromDomain converts domain portfolio entries.
func ProjectsFromDomain(in []domain.Project) []Project {
	if len(in) == 0 {
		return nil
	}
	out := make([]Project, len(in))
	for i, p := range in {
		out[i] = Project(p)
	}
	return out
}

// LanguagesToDomain converts language records.
func LanguagesToDomain(in []Language) []domain.Language {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Language, len(in))
	for i, l := range in {
		out[i] = domain.Language(l)
	}
	return out
}

// LanguagesFromDomain converts domain languages.
func LanguagesFromDomain(in []domain.Language) []Language {
	if len(in) == 0 {
		return nil
	}
	out := make([]Language, len(in))
	for i, l := range in {
		out[i] = Language(l)
	}
	return out
}
