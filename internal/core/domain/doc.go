// Package domain defines the core business entities for profdir.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Profile: A professional record in the directory
//   - Criteria: The active search term and facet selections
//   - Facets: Distinct areas, cities and technologies of a collection
//   - Notification: An ephemeral status message
//   - MessageDraft / SentMessage: The compose form and its accepted result
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
