package services

import (
	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
	"github.com/custodia-labs/profdir/internal/logger"
)

// Ensure Page implements the interface.
var _ driving.PageController = (*Page)(nil)

// Page is the page-level controller. It owns the filter criteria, the
// modal slots, the recommendation set and the notifier; renderers get
// read-only projections and report events back through its methods.
type Page struct {
	directory       driving.DirectoryService
	criteria        domain.Criteria
	selection       *Selection
	recommendations *Recommendations
	notifier        *Notifier
	composer        *Composer
}

// NewPage wires a page controller.
func NewPage(
	directory driving.DirectoryService,
	recommendations *Recommendations,
	notifier *Notifier,
	composer *Composer,
) *Page {
	return &Page{
		directory:       directory,
		selection:       NewSelection(),
		recommendations: recommendations,
		notifier:        notifier,
		composer:        composer,
	}
}

// Criteria returns the active filter criteria.
func (p *Page) Criteria() domain.Criteria {
	return p.criteria
}

// SetSearch updates the free-text search term.
func (p *Page) SetSearch(term string) {
	p.criteria.Search = term
}

// SetArea updates the area filter.
func (p *Page) SetArea(area string) {
	p.criteria.Area = area
}

// SetCity updates the city filter.
func (p *Page) SetCity(city string) {
	p.criteria.City = city
}

// SetTechnology updates the technology filter.
func (p *Page) SetTechnology(tech string) {
	p.criteria.Technology = tech
}

// ClearFilters resets every criterion.
func (p *Page) ClearFilters() {
	p.criteria = domain.Criteria{}
}

// HasActiveFilters reports whether the clear-filters action applies.
func (p *Page) HasActiveFilters() bool {
	return p.criteria.IsActive()
}

// Visible returns the filtered profiles.
func (p *Page) Visible() []domain.Profile {
	return p.directory.Filter(p.criteria)
}

// Facets returns the filter options.
func (p *Page) Facets() domain.Facets {
	return p.directory.Facets()
}

// Total returns the collection size.
func (p *Page) Total() int {
	return p.directory.Count()
}

// OpenDetail shows a profile in the detail slot.
func (p *Page) OpenDetail(profile domain.Profile) {
	p.selection.OpenDetail(profile)
}

// CloseDetail closes the detail slot.
func (p *Page) CloseDetail() {
	p.selection.CloseDetail()
}

// Detail returns the detail target or nil.
func (p *Page) Detail() *domain.Profile {
	return p.selection.Detail()
}

// Recommend marks the profile and shows a notification. Already
// recommended profiles are ignored without a notification.
func (p *Page) Recommend(profile domain.Profile) bool {
	if !p.recommendations.Recommend(profile.ID) {
		return false
	}
	p.notifier.Notify(domain.RecommendedNotification(profile.Name))
	return true
}

// IsRecommended reports whether a profile has been recommended.
func (p *Page) IsRecommended(profileID string) bool {
	return p.recommendations.IsRecommended(profileID)
}

// OpenMessage targets a profile for messaging.
func (p *Page) OpenMessage(profile domain.Profile) {
	p.selection.OpenMessage(profile)
}

// CloseMessage closes the message slot and discards the draft.
func (p *Page) CloseMessage() {
	p.selection.CloseMessage()
}

// MessageTarget returns the message target or nil.
func (p *Page) MessageTarget() *domain.Profile {
	return p.selection.MessageTarget()
}

// Draft returns the in-progress message.
func (p *Page) Draft() domain.MessageDraft {
	return p.selection.Draft()
}

// SetSubject edits the draft subject.
func (p *Page) SetSubject(subject string) {
	p.selection.SetSubject(subject)
}

// SetBody edits the draft body.
func (p *Page) SetBody(body string) {
	p.selection.SetBody(body)
}

// SubmitMessage sends the draft to the message target. On success the
// draft is cleared, the slot closes and a notification is shown. On
// failure nothing changes.
func (p *Page) SubmitMessage() (*domain.SentMessage, error) {
	sent, err := p.composer.Send(p.selection.MessageTarget(), p.selection.Draft())
	if err != nil {
		logger.Debug("Message rejected: %v", err)
		return nil, err
	}
	p.selection.CloseMessage()
	p.notifier.Notify(domain.MessageSentNotification(sent.To))
	return sent, nil
}

// SentMessages returns the session outbox.
func (p *Page) SentMessages() []domain.SentMessage {
	return p.composer.Sent()
}

// Notification returns the visible notification.
func (p *Page) Notification() domain.Notification {
	return p.notifier.Current()
}
