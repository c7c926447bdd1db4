// Package sqlite stores the profile collection in a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. The store serves as a driven.ProfileSource
// and is the target of the import command.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Scalar fields are columns; list fields are JSON
// arrays using the same encoding as the JSON profile file.
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
