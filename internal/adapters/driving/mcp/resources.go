package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/profdir/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for profdir resources.
	uriScheme = "profdir://"

	profilesURI = uriScheme + "profiles"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         profilesURI,
		Name:        "profiles",
		Description: "Every profile in the directory, card-level fields only",
		MIMEType:    "application/json",
	}, s.handleProfilesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: profilesURI + "/{profileId}",
		Name:        "profile",
		Description: "One profile with all sections",
		MIMEType:    "application/json",
	}, s.handleProfileResource)
}

// handleProfilesResource lists every profile in collection order.
func (s *Server) handleProfilesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	profiles := s.ports.Directory.Profiles()
	summaries := make([]ProfileSummary, len(profiles))
	for i := range profiles {
		summaries[i] = summarize(&profiles[i])
	}
	return jsonResource(req.Params.URI, summaries)
}

// handleProfileResource returns one profile.
func (s *Server) handleProfileResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractProfileID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	p, err := s.ports.Directory.Get(id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return jsonResource(req.Params.URI, detail(p))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractProfileID extracts the ID from a URI like profdir://profiles/{profileId}.
func extractProfileID(uri string) string {
	const prefix = profilesURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
