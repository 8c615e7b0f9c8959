package controllers

import (
	"context"
	"sync"
	"testing"
	"time"

	"charge-calculator/internal/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeAccessView struct {
	mu     sync.Mutex
	states []access.State
	shakes int
	infos  []string
}

func (v *fakeAccessView) RenderAccess(state access.State) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.states = append(v.states, state)
}

func (v *fakeAccessView) Shake() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.shakes++
}

func (v *fakeAccessView) ShowInfo(title, message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.infos = append(v.infos, message)
}

func (v *fakeAccessView) last() access.State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.states[len(v.states)-1]
}

func (v *fakeAccessView) shakeCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.shakes
}

func newAccess(t *testing.T) (*AccessController, *fakeAccessView, *stepClock) {
	t.Helper()

	clock := &stepClock{now: time.Unix(1700000000, 0)}
	gate := access.NewGate(access.Options{
		PIN:          "4252",
		MaxAttempts:  3,
		LockDuration: 30 * time.Second,
		Clock:        clock,
	})
	countdown := access.NewCountdown(time.Millisecond)
	t.Cleanup(countdown.Stop)

	ac := NewAccessController(context.Background(), gate, countdown, nil)
	view := &fakeAccessView{}
	ac.SetView(view)
	return ac, view, clock
}

func typePIN(ac *AccessController, pin string) {
	for _, d := range pin {
		ac.Digit(d)
	}
}

func TestAccessUnlockCallsHandler(t *testing.T) {
	ac, view, _ := newAccess(t)
	unlocked := 0
	ac.SetUnlockHandler(func() { unlocked++ })

	ac.Enter()
	typePIN(ac, "4252")

	assert.Equal(t, 1, unlocked)
	assert.Empty(t, view.last().Message)
	assert.Equal(t, 0, view.shakeCount())
}

func TestAccessWrongPINShakes(t *testing.T) {
	ac, view, _ := newAccess(t)

	typePIN(ac, "1111")

	assert.Equal(t, 1, view.shakeCount())
	assert.Equal(t, "Wrong PIN. Attempt 1/3", view.last().Message)
}

func TestAccessSubmitIncomplete(t *testing.T) {
	ac, view, _ := newAccess(t)

	ac.Digit('4')
	ac.Submit()

	assert.Equal(t, access.MsgEnterDigits, view.last().Message)
	assert.Equal(t, 1, view.shakeCount())

	ac.Backspace()
	assert.Equal(t, 0, view.last().Digits)

	ac.Digit('4')
	ac.Clear()
	assert.Equal(t, 0, view.last().Digits)
}

func TestAccessLockoutCountdown(t *testing.T) {
	ac, view, clock := newAccess(t)
	unlocked := false
	ac.SetUnlockHandler(func() { unlocked = true })

	for i := 0; i < 3; i++ {
		typePIN(ac, "0000")
	}
	require.True(t, view.last().Locked)

	typePIN(ac, "4252")
	assert.False(t, unlocked)
	assert.Equal(t, access.MsgTooManyAttempts, ac.State().Message)

	clock.Advance(30 * time.Second)
	require.Eventually(t, func() bool {
		s := view.last()
		return !s.Locked && s.Message == ""
	}, time.Second, time.Millisecond)

	typePIN(ac, "4252")
	assert.True(t, unlocked)
}

func TestAccessEnterResetsLockout(t *testing.T) {
	ac, view, _ := newAccess(t)

	for i := 0; i < 3; i++ {
		typePIN(ac, "0000")
	}
	require.True(t, ac.State().Locked)

	ac.Enter()
	assert.Equal(t, access.State{}, view.last())
	assert.Equal(t, access.State{}, ac.State())
}

func TestAccessDispatcherReceivesTicks(t *testing.T) {
	ac, _, clock := newAccess(t)

	var mu sync.Mutex
	dispatched := 0
	ac.SetDispatcher(func(fn func()) {
		mu.Lock()
		dispatched++
		mu.Unlock()
		fn()
	})

	for i := 0; i < 3; i++ {
		typePIN(ac, "0000")
	}
	clock.Advance(time.Minute)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return dispatched > 0
	}, time.Second, time.Millisecond)
}

func TestAccessHelp(t *testing.T) {
	ac, view, _ := newAccess(t)

	ac.Help()
	assert.Equal(t, []string{PINHelpText}, view.infos)
}
