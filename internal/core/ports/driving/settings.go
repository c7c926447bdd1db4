package driving

import (
	"time"

	"github.com/custodia-labs/profdir/internal/core/domain"
)

// SettingsService manages persisted preferences.
type SettingsService interface {
	// UI returns the interface preferences. Unreadable values fall back
	// to defaults.
	UI() domain.UISettings

	// SetDarkMode persists the theme preference.
	SetDarkMode(enabled bool) error

	// ToggleDarkMode flips and persists the theme preference,
	// returning the new value.
	ToggleDarkMode() (bool, error)

	// Data returns the configured profile source.
	Data() domain.DataSettings

	// SetData persists the profile source.
	SetData(data domain.DataSettings) error

	// NotificationDuration returns how long notifications stay visible.
	NotificationDuration() time.Duration
}
