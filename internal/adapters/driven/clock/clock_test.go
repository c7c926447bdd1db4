package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestReal_AfterFunc_Fires(t *testing.T) {
	done := make(chan struct{})
	Real{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}
}

func TestReal_AfterFunc_Stop(t *testing.T) {
	var fired atomic.Bool
	timer := Real{}.AfterFunc(50*time.Millisecond, func() { fired.Store(true) })

	assert.True(t, timer.Stop())
	time.Sleep(100 * time.Millisecond)
	assert.False(t, fired.Load())
	assert.False(t, timer.Stop())
}

func TestReal_Now(t *testing.T) {
	before := time.Now()
	now := Real{}.Now()
	assert.False(t, now.Before(before))
}

func TestManual_Advance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)
	var calls []string

	m.AfterFunc(3*time.Second, func() { calls = append(calls, "late") })
	m.AfterFunc(1*time.Second, func() { calls = append(calls, "early") })
	assert.Equal(t, 2, m.Pending())

	m.Advance(999 * time.Millisecond)
	assert.Empty(t, calls)

	m.Advance(time.Millisecond)
	assert.Equal(t, []string{"early"}, calls)

	m.Advance(5 * time.Second)
	assert.Equal(t, []string{"early", "late"}, calls)
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, start.Add(6*time.Second), m.Now())
}

func TestManual_Advance_RunsInDeadlineOrder(t *testing.T) {
	m := NewManual(time.Time{})
	var calls []int

	m.AfterFunc(2*time.Second, func() { calls = append(calls, 2) })
	m.AfterFunc(1*time.Second, func() { calls = append(calls, 1) })

	m.Advance(10 * time.Second)
	assert.Equal(t, []int{1, 2}, calls)
}

func TestManual_Stop(t *testing.T) {
	m := NewManual(time.Time{})
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	m.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestManual_StopAfterFire(t *testing.T) {
	m := NewManual(time.Time{})
	timer := m.AfterFunc(time.Second, func() {})

	m.Advance(time.Second)
	assert.False(t, timer.Stop())
}
