package domain

import (
	"strings"
	"time"
)

// MessageDraft is the in-progress content of the compose form.
type MessageDraft struct {
	Subject string
	Body    string
}

// Validate rejects drafts whose subject or body is blank after trimming.
func (d MessageDraft) Validate() error {
	if strings.TrimSpace(d.Subject) == "" || strings.TrimSpace(d.Body) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// IsEmpty reports whether nothing has been typed yet.
func (d MessageDraft) IsEmpty() bool {
	return d.Subject == "" && d.Body == ""
}

// SentMessage is an accepted message. Delivery is simulated; messages
// live only for the current session.
type SentMessage struct {
	// ID identifies the message within the session outbox.
	ID string

	// ProfileID is the recipient's profile.
	ProfileID string

	// To is the recipient's display name.
	To string

	Subject string
	Body    string

	// SentAt is when the message was accepted.
	SentAt time.Time
}
