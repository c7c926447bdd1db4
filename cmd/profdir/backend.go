package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/profdir/internal/adapters/driven/clock"
	"github.com/custodia-labs/profdir/internal/adapters/driven/config/file"
	"github.com/custodia-labs/profdir/internal/adapters/driven/imageref"
	"github.com/custodia-labs/profdir/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/profdir/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/profdir/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/profdir/internal/adapters/driven/watch"
	"github.com/custodia-labs/profdir/internal/adapters/driving/cli"
	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
	"github.com/custodia-labs/profdir/internal/core/services"
	"github.com/custodia-labs/profdir/internal/logger"
)

func newBackend() *cli.Backend {
	return &cli.Backend{
		Settings: openSettings,
		Open:     openSession,
		Import:   importProfiles,
	}
}

func openSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Config loaded from %s", store.Path())
	return services.NewSettingsService(store), nil
}

// profileSource is a loaded source and what it needs released.
type profileSource struct {
	driven.ProfileSource
	dir   string
	close func() error
}

func openSource(data domain.DataSettings) (*profileSource, error) {
	format := data.Format
	if format == "" {
		format = services.InferSourceFormat(data.Path)
	}

	switch format {
	case domain.SourceFormatJSON:
		src := jsonfile.NewSource(data.Path)
		return &profileSource{ProfileSource: src, dir: src.Dir(), close: func() error { return nil }}, nil
	case domain.SourceFormatSQLite:
		store, err := sqlite.OpenSource(data.Path)
		if err != nil {
			return nil, err
		}
		return &profileSource{ProfileSource: store, dir: filepath.Dir(store.Path()), close: store.Close}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

func openSession(
	ctx context.Context,
	data domain.DataSettings,
	settings driving.SettingsService,
	watchSource bool,
) (*cli.Session, error) {
	logger.Section("Session")

	src, err := openSource(data)
	if err != nil {
		return nil, err
	}

	directory, err := services.LoadDirectory(ctx, src)
	if err != nil {
		_ = src.close()
		return nil, err
	}

	duration := domain.DefaultNotificationDuration
	if settings != nil {
		duration = settings.NotificationDuration()
	}

	clk := clock.Real{}
	notifier := services.NewNotifier(clk, duration)
	page := services.NewPage(
		directory,
		services.NewRecommendations(memory.NewRecommendationStore()),
		notifier,
		services.NewComposer(memory.NewOutbox(), clk),
	)

	closers := []func() error{
		func() error { notifier.Stop(); return nil },
		src.close,
	}

	s := &cli.Session{
		Directory:     directory,
		Page:          page,
		Notifications: notifier,
		Images:        imageref.NewResolver(src.dir),
		Location:      src.Location(),
		Reload: func(ctx context.Context) (int, error) {
			if err := directory.Reload(ctx, src); err != nil {
				return 0, err
			}
			return directory.Count(), nil
		},
	}

	if watchSource {
		if _, ok := src.ProfileSource.(*jsonfile.Source); ok {
			w, err := watch.NewFileWatcher(data.Path, watch.DefaultDebounce)
			if err != nil {
				_ = closeAll(closers)
				return nil, err
			}
			s.Watcher = w
			closers = append(closers, w.Close)
		} else {
			logger.Warn("--watch only applies to JSON sources, ignoring for %s", src.Location())
		}
	}

	s.Close = func() error { return closeAll(closers) }
	return s, nil
}

func closeAll(closers []func() error) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func importProfiles(ctx context.Context, jsonPath, sqlitePath string) (int, error) {
	profiles, err := jsonfile.NewSource(jsonPath).Load(ctx)
	if err != nil {
		return 0, err
	}
	if err := domain.ValidateProfiles(profiles); err != nil {
		return 0, err
	}

	store, err := sqlite.NewStore(sqlitePath)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	if err := store.Import(ctx, profiles); err != nil {
		return 0, err
	}
	return len(profiles), nil
}
