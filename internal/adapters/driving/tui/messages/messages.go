// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/profdir/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDirectory is the searchable profile grid.
	ViewDirectory ViewType = iota
	// ViewDetail shows one profile.
	ViewDetail
	// ViewCompose is the message form.
	ViewCompose
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDirectory:
		return "directory"
	case ViewDetail:
		return "detail"
	case ViewCompose:
		return "compose"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ProfileOpened is sent when a card is activated.
type ProfileOpened struct {
	Profile domain.Profile
}

// DetailClosed is sent when the detail view is dismissed.
type DetailClosed struct{}

// RecommendRequested is sent from the detail view.
type RecommendRequested struct {
	Profile domain.Profile
}

// MessageRequested opens the compose form for a profile.
type MessageRequested struct {
	Profile domain.Profile
}

// MessageSubmitted asks the page to send the current draft.
type MessageSubmitted struct{}

// ComposeCancelled closes the compose form and discards the draft.
type ComposeCancelled struct{}

// NotificationChanged is delivered when a notification appears or expires.
type NotificationChanged struct {
	Notification domain.Notification
}

// ProfilesReloaded is sent after the profile source changed on disk.
type ProfilesReloaded struct {
	Count int
	Err   error
}

// ThemeToggled reports the result of persisting a theme press. Seq
// orders presses so a failure only reverts the latest one.
type ThemeToggled struct {
	Dark bool
	Seq  uint64
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
