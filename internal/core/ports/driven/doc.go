// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ProfileSource: Reads the static profile collection once at startup
//   - ConfigStore: Application configuration (theme preference, data path)
//   - Clock: Schedules cancellable notification expiry
//   - RecommendationStore: Session-scoped set of recommended profile IDs
//   - Outbox: Session-scoped record of accepted messages
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ImageResolver: Resolves photo references. Without it every profile
//     renders with initials.
//   - ProfileWatcher: Reloads the collection when the source changes.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
