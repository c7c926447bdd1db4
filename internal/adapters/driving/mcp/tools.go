package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/profdir/internal/core/domain"
)

// DefaultLimit caps search_profiles results when no limit is given.
const DefaultLimit = 25

// SearchInput is the input schema for the search_profiles tool.
type SearchInput struct {
	Search     string `json:"search,omitempty" jsonschema:"case-insensitive text matched against name, role and summary"`
	Area       string `json:"area,omitempty" jsonschema:"exact professional area, see list_facets"`
	City       string `json:"city,omitempty" jsonschema:"exact city, see list_facets"`
	Technology string `json:"technology,omitempty" jsonschema:"case-insensitive substring of any technical skill"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of profiles to return (default 25)"`
}

// SearchOutput is the output schema for the search_profiles tool.
type SearchOutput struct {
	Profiles []ProfileSummary `json:"profiles"`
	Count    int              `json:"count"`
	Matched  int              `json:"matched"`
	Total    int              `json:"total"`
}

// ProfileSummary is the card-level view of a profile.
type ProfileSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Summary  string   `json:"summary,omitempty"`
	Location string   `json:"location"`
	Area     string   `json:"area"`
	Skills   []string `json:"skills,omitempty"`
}

// GetProfileInput is the input schema for the get_profile tool.
type GetProfileInput struct {
	ID string `json:"id" jsonschema:"the profile identifier"`
}

// ProfileOutput is the full profile.
type ProfileOutput struct {
	ProfileSummary
	SoftSkills     []string           `json:"soft_skills,omitempty"`
	Experiences    []ExperienceOutput `json:"experiences,omitempty"`
	Education      []EducationOutput  `json:"education,omitempty"`
	Projects       []ProjectOutput    `json:"projects,omitempty"`
	Certifications []string           `json:"certifications,omitempty"`
	Languages      []LanguageOutput   `json:"languages,omitempty"`
	Interests      []string           `json:"interests,omitempty"`
}

// ExperienceOutput is one work history entry.
type ExperienceOutput struct {
	Role        string `json:"role"`
	Employer    string `json:"employer"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationOutput is one academic entry.
type EducationOutput struct {
	Course      string `json:"course"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
}

// ProjectOutput is one portfolio entry.
type ProjectOutput struct {
	Title       string `json:"title"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description,omitempty"`
}

// LanguageOutput is a spoken language.
type LanguageOutput struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// FacetsInput takes no arguments.
type FacetsInput struct{}

// FacetsOutput lists the distinct filter values.
type FacetsOutput struct {
	Areas        []string `json:"areas"`
	Cities       []string `json:"cities"`
	Technologies []string `json:"technologies"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_profiles",
		Description: "Search the profile directory by text, area, city and technology",
	}, s.handleSearchProfiles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get one profile with experiences, education and projects",
	}, s.handleGetProfile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_facets",
		Description: "List the distinct areas, cities and technologies used as filters",
	}, s.handleListFacets)
}

// handleSearchProfiles handles the search_profiles tool invocation.
func (s *Server) handleSearchProfiles(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	matched := s.ports.Directory.Filter(domain.Criteria{
		Search:     input.Search,
		Area:       input.Area,
		City:       input.City,
		Technology: input.Technology,
	})

	shown := matched
	if len(shown) > limit {
		shown = shown[:limit]
	}

	output := SearchOutput{
		Profiles: make([]ProfileSummary, len(shown)),
		Count:    len(shown),
		Matched:  len(matched),
		Total:    s.ports.Directory.Count(),
	}
	for i := range shown {
		output.Profiles[i] = summarize(&shown[i])
	}

	return nil, output, nil
}

// handleGetProfile handles the get_profile tool invocation.
func (s *Server) handleGetProfile(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetProfileInput,
) (*mcp.CallToolResult, ProfileOutput, error) {
	if input.ID == "" {
		return nil, ProfileOutput{}, fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}

	p, err := s.ports.Directory.Get(input.ID)
	if err != nil {
		return nil, ProfileOutput{}, fmt.Errorf("get_profile: %w", err)
	}

	return nil, detail(p), nil
}

// handleListFacets handles the list_facets tool invocation.
func (s *Server) handleListFacets(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ FacetsInput,
) (*mcp.CallToolResult, FacetsOutput, error) {
	facets := s.ports.Directory.Facets()
	return nil, FacetsOutput{
		Areas:        facets.Areas,
		Cities:       facets.Cities,
		Technologies: facets.Technologies,
	}, nil
}

func summarize(p *domain.Profile) ProfileSummary {
	return ProfileSummary{
		ID:       p.ID,
		Name:     p.Name,
		Role:     p.Role,
		Summary:  p.Summary,
		Location: p.Location,
		Area:     p.Area,
		Skills:   p.Skills,
	}
}

func detail(p *domain.Profile) ProfileOutput {
	out := ProfileOutput{
		ProfileSummary: summarize(p),
		SoftSkills:     p.SoftSkills,
		Certifications: p.Certifications,
		Interests:      p.Interests,
	}
	for _, e := range p.Experiences {
		out.Experiences = append(out.Experiences, ExperienceOutput(e))
	}
	for _, e := range p.Education {
		out.Education = append(out.Education, EducationOutput(e))
	}
	for _, pr := range p.Projects {
		out.Projects = append(out.Projects, ProjectOutput(pr))
	}
	for _, l := range p.Languages {
		out.Languages = append(out.Languages, LanguageOutput(l))
	}
	return out
}
