// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO or external dependencies.
// All page state is owned by Page and mutated only from the caller's
// event loop; the one exception is the notification expiry, which
// fires on a timer goroutine and is guarded by the Notifier's lock.
package services
