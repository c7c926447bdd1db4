package domain

// UISettings holds the persisted interface preferences.
type UISettings struct {
	// DarkMode selects the dark colour theme.
	DarkMode bool
}

// DefaultUISettings returns the settings used when nothing is persisted
// or the persisted value cannot be read.
func DefaultUISettings() UISettings {
	return UISettings{DarkMode: false}
}

// SourceFormat identifies how the profile collection is stored.
type SourceFormat string

// Supported source formats.
const (
	// SourceFormatJSON is a JSON array of profiles.
	SourceFormatJSON SourceFormat = "json"

	// SourceFormatSQLite is a SQLite database created by `profdir import`.
	SourceFormatSQLite SourceFormat = "sqlite"
)

// IsValid returns true if the format is recognised.
func (f SourceFormat) IsValid() bool {
	switch f {
	case SourceFormatJSON, SourceFormatSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f SourceFormat) String() string {
	return string(f)
}

// DataSettings configures where profiles are loaded from.
type DataSettings struct {
	// Path is the profile source location.
	Path string

	// Format is the source format. Empty means infer from the path.
	Format SourceFormat
}
