package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotification_Visible(t *testing.T) {
	assert.False(t, Notification{}.Visible())
	assert.False(t, Notification{Kind: NotificationSuccess}.Visible())
	assert.False(t, Notification{Text: "orphan text"}.Visible())
	assert.True(t, Notification{Kind: NotificationSuccess, Text: "done"}.Visible())
}

func TestNotificationTexts(t *testing.T) {
	rec := RecommendedNotification("Ana Silva")
	assert.Equal(t, NotificationSuccess, rec.Kind)
	assert.Contains(t, rec.Text, "You recommended Ana Silva!")

	sent := MessageSentNotification("Bruno")
	assert.Equal(t, NotificationSuccess, sent.Kind)
	assert.Contains(t, sent.Text, "Message sent to Bruno!")
}

func TestDefaultNotificationDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, DefaultNotificationDuration)
}
