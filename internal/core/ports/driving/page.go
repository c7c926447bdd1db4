package driving

import "github.com/custodia-labs/profdir/internal/core/domain"

// PageController owns every piece of session state of the directory page.
// Presentation layers read its projections and report user events to it.
type PageController interface {
	// Criteria returns the active filter criteria.
	Criteria() domain.Criteria

	// SetSearch, SetArea, SetCity and SetTechnology update one criterion.
	// An empty value means "any".
	SetSearch(term string)
	SetArea(area string)
	SetCity(city string)
	SetTechnology(tech string)

	// ClearFilters resets every criterion to "any".
	ClearFilters()

	// HasActiveFilters reports whether any criterion restricts the result.
	HasActiveFilters() bool

	// Visible returns the filtered profiles.
	Visible() []domain.Profile

	// Facets returns the filter options.
	Facets() domain.Facets

	// Total returns the collection size.
	Total() int

	// OpenDetail shows a profile in the detail slot, replacing any target.
	OpenDetail(profile domain.Profile)

	// CloseDetail hides the detail slot and clears its target.
	CloseDetail()

	// Detail returns the detail target, or nil when closed.
	Detail() *domain.Profile

	// Recommend marks the profile as recommended. It returns false when
	// the profile was already recommended and nothing happened.
	Recommend(profile domain.Profile) bool

	// IsRecommended reports whether a profile has been recommended.
	IsRecommended(profileID string) bool

	// OpenMessage targets a profile for messaging, replacing any target.
	OpenMessage(profile domain.Profile)

	// CloseMessage hides the message slot and discards the draft.
	CloseMessage()

	// MessageTarget returns the message target, or nil when closed.
	MessageTarget() *domain.Profile

	// Draft returns the in-progress message.
	Draft() domain.MessageDraft

	// SetSubject and SetBody edit the draft.
	SetSubject(subject string)
	SetBody(body string)

	// SubmitMessage validates and sends the draft. On rejection the
	// slot stays open and the draft is kept.
	SubmitMessage() (*domain.SentMessage, error)

	// SentMessages returns the session outbox.
	SentMessages() []domain.SentMessage

	// Notification returns the currently visible notification.
	Notification() domain.Notification
}
