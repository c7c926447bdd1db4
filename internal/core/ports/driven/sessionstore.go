package driven

import "github.com/custodia-labs/profdir/internal/core/domain"

// RecommendationStore holds the profile IDs recommended in this session.
// The set only grows: there is no removal.
type RecommendationStore interface {
	// Add inserts an ID. It returns false if the ID was already present.
	Add(profileID string) bool

	// Contains reports whether the ID has been recommended.
	Contains(profileID string) bool

	// Count returns the number of recommended profiles.
	Count() int

	// List returns the recommended IDs in insertion order.
	List() []string
}

// Outbox records messages accepted during this session.
type Outbox interface {
	// Append stores a sent message, assigning its ID, and returns
	// the stored copy.
	Append(msg domain.SentMessage) domain.SentMessage

	// List returns all sent messages, oldest first.
	List() []domain.SentMessage
}
