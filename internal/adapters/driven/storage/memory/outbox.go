package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
)

// Ensure Outbox implements the interface.
var _ driven.Outbox = (*Outbox)(nil)

// Outbox keeps accepted messages for the lifetime of the process.
type Outbox struct {
	mu       sync.RWMutex
	messages []domain.SentMessage
}

// NewOutbox creates an empty outbox.
func NewOutbox() *Outbox {
	return &Outbox{}
}

// Append stores the message under a fresh ID.
func (o *Outbox) Append(msg domain.SentMessage) domain.SentMessage {
	msg.ID = uuid.New().String()

	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, msg)
	return msg
}

// List returns the messages, oldest first.
func (o *Outbox) List() []domain.SentMessage {
	o.mu.RLock()
	defer o.mu.RUnlock()
	result := make([]domain.SentMessage, len(o.messages))
	copy(result, o.messages)
	return result
}
