package domain

import "time"

// DefaultNotificationDuration is how long a notification stays visible.
const DefaultNotificationDuration = 3 * time.Second

// NotificationKind classifies a notification for styling.
type NotificationKind string

// Available notification kinds.
const (
	// NotificationNone means nothing is shown.
	NotificationNone NotificationKind = ""

	// NotificationSuccess confirms a completed action.
	NotificationSuccess NotificationKind = "success"
)

// Notification is an ephemeral status message.
type Notification struct {
	Kind NotificationKind
	Text string
}

// Visible reports whether the notification should be rendered.
func (n Notification) Visible() bool {
	return n.Kind != NotificationNone && n.Text != ""
}

// RecommendedNotification is emitted after a profile is recommended.
func RecommendedNotification(name string) Notification {
	return Notification{Kind: NotificationSuccess, Text: "You recommended " + name + "! ⭐"}
}

// MessageSentNotification is emitted after a message is accepted.
func MessageSentNotification(to string) Notification {
	return Notification{Kind: NotificationSuccess, Text: "Message sent to " + to + "! 💬"}
}
