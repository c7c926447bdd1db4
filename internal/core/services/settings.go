package services

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDarkMode             = "ui.dark_mode"
	keyDataPath             = "data.path"
	keyDataFormat           = "data.format"
	keyNotificationDuration = "notifications.duration_ms"
)

// SettingsService manages persisted preferences.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// UI returns the interface preferences. A missing or non-boolean
// dark-mode value reads as the default.
func (s *SettingsService) UI() domain.UISettings {
	settings := domain.DefaultUISettings()
	if val, ok := s.configStore.Get(keyDarkMode); ok {
		if dark, ok := val.(bool); ok {
			settings.DarkMode = dark
		}
	}
	return settings
}

// SetDarkMode persists the theme preference.
func (s *SettingsService) SetDarkMode(enabled bool) error {
	if err := s.configStore.Set(keyDarkMode, enabled); err != nil {
		return fmt.Errorf("save dark mode: %w", err)
	}
	return nil
}

// ToggleDarkMode flips the theme preference.
func (s *SettingsService) ToggleDarkMode() (bool, error) {
	next := !s.UI().DarkMode
	if err := s.SetDarkMode(next); err != nil {
		return !next, err
	}
	return next, nil
}

// Data returns the configured profile source. The format is inferred
// from the file extension when not set explicitly.
func (s *SettingsService) Data() domain.DataSettings {
	data := domain.DataSettings{
		Path:   s.configStore.GetString(keyDataPath),
		Format: domain.SourceFormat(s.configStore.GetString(keyDataFormat)),
	}
	if !data.Format.IsValid() {
		data.Format = InferSourceFormat(data.Path)
	}
	return data
}

// SetData persists the profile source.
func (s *SettingsService) SetData(data domain.DataSettings) error {
	if data.Format != "" && !data.Format.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, data.Format)
	}
	if err := s.configStore.Set(keyDataPath, data.Path); err != nil {
		return fmt.Errorf("save data path: %w", err)
	}
	if err := s.configStore.Set(keyDataFormat, data.Format.String()); err != nil {
		return fmt.Errorf("save data format: %w", err)
	}
	return nil
}

// NotificationDuration returns how long notifications stay visible.
func (s *SettingsService) NotificationDuration() time.Duration {
	ms := s.configStore.GetInt(keyNotificationDuration)
	if ms <= 0 {
		return domain.DefaultNotificationDuration
	}
	return time.Duration(ms) * time.Millisecond
}

// InferSourceFormat picks a format from a file extension, defaulting to JSON.
func InferSourceFormat(path string) domain.SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return domain.SourceFormatSQLite
	default:
		return domain.SourceFormatJSON
	}
}
