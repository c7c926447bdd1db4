package mcp

import (
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Directory is the read-only profile collection.
	Directory driving.DirectoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Directory == nil {
		return ErrMissingDirectory
	}
	return nil
}
