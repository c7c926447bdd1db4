package services

import "github.com/custodia-labs/profdir/internal/core/domain"

// Slot is a modal that is either closed or open on exactly one profile.
// Visibility is derived from the target so an open slot can never
// point at no profile, and a closed slot never retains a stale one.
type Slot struct {
	target *domain.Profile
}

// Open shows the slot on a profile, replacing any previous target.
func (s *Slot) Open(profile domain.Profile) {
	cp := profile
	s.target = &cp
}

// Close hides the slot and drops the target. Closing twice is a no-op.
func (s *Slot) Close() {
	s.target = nil
}

// IsOpen reports whether the slot is visible.
func (s *Slot) IsOpen() bool {
	return s.target != nil
}

// Target returns the profile shown in the slot, or nil when closed.
func (s *Slot) Target() *domain.Profile {
	return s.target
}

// Selection tracks the detail and message slots and the message draft.
// The two slots are independent of each other.
type Selection struct {
	detail  Slot
	message Slot
	draft   domain.MessageDraft
}

// NewSelection creates a selection with both slots closed.
func NewSelection() *Selection {
	return &Selection{}
}

// OpenDetail shows a profile in the detail slot.
func (s *Selection) OpenDetail(profile domain.Profile) {
	s.detail.Open(profile)
}

// CloseDetail closes the detail slot.
func (s *Selection) CloseDetail() {
	s.detail.Close()
}

// Detail returns the detail target or nil.
func (s *Selection) Detail() *domain.Profile {
	return s.detail.Target()
}

// OpenMessage targets a profile for messaging. Re-opening the same
// profile keeps the draft; a different profile starts a fresh one.
func (s *Selection) OpenMessage(profile domain.Profile) {
	if current := s.message.Target(); current == nil || current.ID != profile.ID {
		s.draft = domain.MessageDraft{}
	}
	s.message.Open(profile)
}

// CloseMessage closes the message slot and discards the draft.
func (s *Selection) CloseMessage() {
	s.message.Close()
	s.draft = domain.MessageDraft{}
}

// MessageTarget returns the message target or nil.
func (s *Selection) MessageTarget() *domain.Profile {
	return s.message.Target()
}

// Draft returns the in-progress message.
func (s *Selection) Draft() domain.MessageDraft {
	return s.draft
}

// SetSubject edits the draft subject.
func (s *Selection) SetSubject(subject string) {
	s.draft.Subject = subject
}

// SetBody edits the draft body.
func (s *Selection) SetBody(body string) {
	s.draft.Body = body
}
