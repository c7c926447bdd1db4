package services

import (
	"fmt"

	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
	"github.com/custodia-labs/profdir/internal/logger"
)

// Composer validates drafts and records accepted messages.
// Nothing is delivered; the outbox lives for the session only.
type Composer struct {
	outbox driven.Outbox
	clock  driven.Clock
}

// NewComposer creates a composer writing to the given outbox.
func NewComposer(outbox driven.Outbox, clock driven.Clock) *Composer {
	return &Composer{outbox: outbox, clock: clock}
}

// Send validates the draft for the recipient and stores the message.
// The subject and body are kept as typed; trimming only decides validity.
func (c *Composer) Send(to *domain.Profile, draft domain.MessageDraft) (*domain.SentMessage, error) {
	if to == nil {
		return nil, domain.ErrNoRecipient
	}
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("message to %s: %w", to.Name, err)
	}

	sent := c.outbox.Append(domain.SentMessage{
		ProfileID: to.ID,
		To:        to.Name,
		Subject:   draft.Subject,
		Body:      draft.Body,
		SentAt:    c.clock.Now(),
	})
	logger.Debug("Message %s accepted for %s", sent.ID, to.Name)
	return &sent, nil
}

// Sent returns the session outbox.
func (c *Composer) Sent() []domain.SentMessage {
	return c.outbox.List()
}
