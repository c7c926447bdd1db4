package services

import (
	"sync"
	"time"

	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
	"github.com/custodia-labs/profdir/internal/logger"
)

// Notifier shows one notification at a time and hides it after a fixed
// duration. Each Notify cancels the pending expiry of the previous one,
// so only the latest notification's timer governs visibility.
type Notifier struct {
	mu       sync.Mutex
	clock    driven.Clock
	duration time.Duration
	current  domain.Notification
	timer    driven.Timer
	// generation identifies the latest Notify. An expiry that lost the
	// race with Stop compares against it and does nothing.
	generation uint64
	onChange   func(domain.Notification)
}

// NewNotifier creates a notifier. A non-positive duration uses
// domain.DefaultNotificationDuration.
func NewNotifier(clock driven.Clock, duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = domain.DefaultNotificationDuration
	}
	return &Notifier{
		clock:    clock,
		duration: duration,
	}
}

// OnChange registers a callback run after every visible change,
// including expiry. It runs outside the notifier's lock.
func (n *Notifier) OnChange(fn func(domain.Notification)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

// Notify replaces the current notification and restarts the timer.
func (n *Notifier) Notify(notification domain.Notification) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.generation++
	gen := n.generation
	n.current = notification
	n.timer = n.clock.AfterFunc(n.duration, func() {
		n.expire(gen)
	})
	fn := n.onChange
	n.mu.Unlock()

	logger.Debug("Notification shown: %q", notification.Text)
	if fn != nil {
		fn(notification)
	}
}

// expire hides the notification if gen is still the latest.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	if gen != n.generation {
		n.mu.Unlock()
		return
	}
	n.current = domain.Notification{}
	n.timer = nil
	fn := n.onChange
	n.mu.Unlock()

	logger.Debug("Notification expired")
	if fn != nil {
		fn(domain.Notification{})
	}
}

// Current returns the visible notification, or the zero value.
func (n *Notifier) Current() domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Duration returns the display duration.
func (n *Notifier) Duration() time.Duration {
	return n.duration
}

// Stop cancels any pending expiry and clears the notification.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.generation++
	n.current = domain.Notification{}
}
