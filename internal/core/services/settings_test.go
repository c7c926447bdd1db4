package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profdir/internal/adapters/driven/config/file"
	"github.com/custodia-labs/profdir/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/profdir/internal/core/domain"
)

func TestSettingsService_UI_Default(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	assert.False(t, svc.UI().DarkMode)
}

func TestSettingsService_UI_MalformedValue(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("ui.dark_mode", "yes please"))

	svc := NewSettingsService(store)

	assert.False(t, svc.UI().DarkMode)
}

func TestSettingsService_UI_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("ui.dark_mode = \n[[["), 0o600))

	store, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	svc := NewSettingsService(store)

	assert.False(t, svc.UI().DarkMode)
	assert.Equal(t, domain.DefaultNotificationDuration, svc.NotificationDuration())

	dark, err := svc.ToggleDarkMode()
	require.NoError(t, err)
	assert.True(t, dark)
}

func TestSettingsService_SetDarkMode(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.SetDarkMode(true))

	assert.True(t, svc.UI().DarkMode)
	assert.True(t, store.GetBool("ui.dark_mode"))
}

func TestSettingsService_ToggleDarkMode(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	dark, err := svc.ToggleDarkMode()
	require.NoError(t, err)
	assert.True(t, dark)

	dark, err = svc.ToggleDarkMode()
	require.NoError(t, err)
	assert.False(t, dark)
}

func TestSettingsService_ToggleDarkMode_SaveFails(t *testing.T) {
	store := memory.NewConfigStore()
	store.SetReadOnly(true)
	svc := NewSettingsService(store)

	dark, err := svc.ToggleDarkMode()

	require.Error(t, err)
	assert.ErrorIs(t, err, memory.ErrReadOnly)
	assert.False(t, dark)
	assert.False(t, svc.UI().DarkMode)
}

func TestSettingsService_Data(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		format   string
		expected domain.SourceFormat
	}{
		{"json by default", "profiles.json", "", domain.SourceFormatJSON},
		{"sqlite extension", "/data/profiles.db", "", domain.SourceFormatSQLite},
		{"sqlite3 extension", "profiles.SQLITE3", "", domain.SourceFormatSQLite},
		{"explicit format wins", "profiles.data", "sqlite", domain.SourceFormatSQLite},
		{"invalid format inferred", "profiles.json", "xml", domain.SourceFormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			require.NoError(t, store.Set("data.path", tt.path))
			require.NoError(t, store.Set("data.format", tt.format))

			data := NewSettingsService(store).Data()

			assert.Equal(t, tt.path, data.Path)
			assert.Equal(t, tt.expected, data.Format)
		})
	}
}

func TestSettingsService_SetData(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	err := svc.SetData(domain.DataSettings{Path: "x.db", Format: domain.SourceFormatSQLite})
	require.NoError(t, err)
	assert.Equal(t, domain.DataSettings{Path: "x.db", Format: domain.SourceFormatSQLite}, svc.Data())

	err = svc.SetData(domain.DataSettings{Path: "x", Format: "csv"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestSettingsService_NotificationDuration(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	assert.Equal(t, 3*time.Second, svc.NotificationDuration())

	require.NoError(t, store.Set("notifications.duration_ms", 1500))
	assert.Equal(t, 1500*time.Millisecond, svc.NotificationDuration())

	require.NoError(t, store.Set("notifications.duration_ms", -1))
	assert.Equal(t, 3*time.Second, svc.NotificationDuration())
}
