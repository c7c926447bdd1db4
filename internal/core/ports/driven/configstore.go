package driven

// ConfigStore holds the persisted preferences under dotted keys such as
// "ui.dark_mode" and "data.path". Getters never fail: a missing key or
// a value of the wrong type reads as the zero value, which lets callers
// fall back to their defaults.
type ConfigStore interface {
	// Get returns the raw value and whether the key exists, so callers
	// can tell an unset key from a malformed one.
	Get(key string) (any, bool)

	// GetString returns "" unless the value is a string.
	GetString(key string) string

	// GetInt returns 0 unless the value is numeric.
	GetInt(key string) int

	// Set stores and persists a value. On a failed write the previous
	// value is kept.
	Set(key string, value any) error

	// Path describes where the values are persisted.
	Path() string
}
