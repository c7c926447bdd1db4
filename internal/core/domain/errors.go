package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateID indicates two profiles share an identifier.
	ErrDuplicateID = errors.New("duplicate profile id")

	// ErrMissingID indicates a profile has no identifier.
	ErrMissingID = errors.New("profile id is required")

	// ErrEmptyMessage indicates a message was submitted with a blank
	// subject or body.
	ErrEmptyMessage = errors.New("subject and message are required")

	// ErrNoRecipient indicates a message was submitted while the
	// compose slot had no target profile.
	ErrNoRecipient = errors.New("no message recipient selected")

	// ErrSourceUnavailable indicates the profile source could not be read.
	ErrSourceUnavailable = errors.New("profile source unavailable")

	// ErrUnsupportedFormat indicates an unknown profile source format.
	ErrUnsupportedFormat = errors.New("unsupported profile source format")
)
