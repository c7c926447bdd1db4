package tui

import "errors"

// ErrMissingPage is returned when the page controller is not provided.
var ErrMissingPage = errors.New("tui: page controller is required")

// ErrMissingSettings is returned when the settings service is not provided.
var ErrMissingSettings = errors.New("tui: settings service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
