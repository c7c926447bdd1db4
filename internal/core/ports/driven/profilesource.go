package driven

import (
	"context"

	"github.com/custodia-labs/profdir/internal/core/domain"
)

// ProfileSource supplies the static, ordered profile collection.
type ProfileSource interface {
	// Load reads every profile in collection order.
	Load(ctx context.Context) ([]domain.Profile, error)

	// Location describes where the profiles come from (path or DSN).
	Location() string
}

// ProfileWatcher notifies when the underlying profile source changes.
type ProfileWatcher interface {
	// Watch blocks until ctx is cancelled, calling onChange after
	// each detected modification.
	Watch(ctx context.Context, onChange func()) error

	// Close releases watcher resources.
	Close() error
}
