// Package tui provides an interactive terminal user interface for profdir.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"
	"fmt"

	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
)

// NotificationSource publishes notification changes, including expiry.
type NotificationSource interface {
	OnChange(fn func(domain.Notification))
}

// Ports aggregates everything the TUI needs from the core.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Page owns the session state: filters, modal slots,
	// recommendations, draft and notification.
	Page driving.PageController

	// Settings persists the theme preference.
	Settings driving.SettingsService

	// Images resolves photo references. Optional.
	Images driven.ImageResolver

	// Notifications reports expiry so the status bar can clear itself.
	// Optional: without it a notification is only refreshed on input.
	Notifications NotificationSource

	// Watcher triggers Reload when the profile source changes. Optional.
	Watcher driven.ProfileWatcher

	// Reload re-reads the profile source and returns the new count.
	Reload func(ctx context.Context) (int, error)
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(page driving.PageController, settings driving.SettingsService) *Ports {
	return &Ports{
		Page:     page,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Page == nil {
		return ErrMissingPage
	}
	if p.Settings == nil {
		return ErrMissingSettings
	}
	if p.Watcher != nil && p.Reload == nil {
		return fmt.Errorf("%w: watcher set without reload", ErrInvalidPorts)
	}
	return nil
}
