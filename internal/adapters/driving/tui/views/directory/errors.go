package directory

import "errors"

// Error definitions for the directory view.
var (
	// ErrNoPage indicates that no page controller was provided.
	ErrNoPage = errors.New("page controller is required")
)
