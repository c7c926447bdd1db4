package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profdir/internal/core/domain"
)

func TestSlot_OpenClose(t *testing.T) {
	var slot Slot
	assert.False(t, slot.IsOpen())
	assert.Nil(t, slot.Target())

	slot.Open(domain.Profile{ID: "1"})
	require.True(t, slot.IsOpen())
	assert.Equal(t, "1", slot.Target().ID)

	slot.Close()
	assert.False(t, slot.IsOpen())
	assert.Nil(t, slot.Target())

	// Closing an already closed slot is a no-op.
	slot.Close()
	assert.False(t, slot.IsOpen())
}

func TestSlot_OpenReplacesTarget(t *testing.T) {
	var slot Slot
	slot.Open(domain.Profile{ID: "A"})
	slot.Open(domain.Profile{ID: "B"})

	require.True(t, slot.IsOpen())
	assert.Equal(t, "B", slot.Target().ID)
}

func TestSlot_TargetIsACopy(t *testing.T) {
	var slot Slot
	p := domain.Profile{ID: "1", Name: "Ana"}
	slot.Open(p)

	p.Name = "Changed"

	assert.Equal(t, "Ana", slot.Target().Name)
}

func TestSelection_SlotsAreIndependent(t *testing.T) {
	s := NewSelection()

	s.OpenDetail(domain.Profile{ID: "1"})
	s.OpenMessage(domain.Profile{ID: "2"})
	assert.Equal(t, "1", s.Detail().ID)
	assert.Equal(t, "2", s.MessageTarget().ID)

	s.CloseDetail()
	assert.Nil(t, s.Detail())
	require.NotNil(t, s.MessageTarget())
	assert.Equal(t, "2", s.MessageTarget().ID)
}

func TestSelection_CloseMessageDiscardsDraft(t *testing.T) {
	s := NewSelection()
	s.OpenMessage(domain.Profile{ID: "1"})
	s.SetSubject("Hello")
	s.SetBody("World")

	s.CloseMessage()

	assert.Nil(t, s.MessageTarget())
	assert.True(t, s.Draft().IsEmpty())
}

func TestSelection_ReplacingMessageTarget(t *testing.T) {
	tests := []struct {
		name        string
		next        string
		wantSubject string
		wantBody    string
	}{
		{name: "same profile keeps draft", next: "A", wantSubject: "Hello", wantBody: "typed"},
		{name: "other profile resets draft", next: "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			s.OpenMessage(domain.Profile{ID: "A"})
			s.SetSubject("Hello")
			s.SetBody("typed")

			s.OpenMessage(domain.Profile{ID: tt.next})

			assert.Equal(t, tt.next, s.MessageTarget().ID)
			assert.Equal(t, tt.wantSubject, s.Draft().Subject)
			assert.Equal(t, tt.wantBody, s.Draft().Body)
		})
	}
}

func TestSelection_CloseDetailKeepsDraft(t *testing.T) {
	s := NewSelection()
	s.OpenDetail(domain.Profile{ID: "1"})
	s.OpenMessage(domain.Profile{ID: "1"})
	s.SetBody("typed")

	s.CloseDetail()

	assert.Equal(t, "typed", s.Draft().Body)
}
