package rotini

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdleTimerFires(t *testing.T) {
	fired := make(chan struct{})
	timer := NewIdleTimer(20*time.Millisecond, func() { close(fired) })
	defer timer.Stop()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("idle timer never fired")
	}
}

func TestIdleTimerTouchDefersFiring(t *testing.T) {
	fired := make(chan struct{}, 1)
	timer := NewIdleTimer(60*time.Millisecond, func() { fired <- struct{}{} })
	defer timer.Stop()

	for i := 0; i < 4; i++ {
		time.Sleep(20 * time.Millisecond)
		timer.Touch()
	}
	select {
	case <-fired:
		t.Fatal("timer fired despite activity")
	default:
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer never fired after activity stopped")
	}
}

func TestIdleTimerStop(t *testing.T) {
	fired := make(chan struct{}, 1)
	timer := NewIdleTimer(20*time.Millisecond, func() { fired <- struct{}{} })
	timer.Stop()

	time.Sleep(60 * time.Millisecond)
	select {
	case <-fired:
		t.Fatal("stopped timer fired")
	default:
	}

	// Touch and Stop after Stop are harmless.
	timer.Touch()
	timer.Stop()
}

func TestIdleTimerDisabled(t *testing.T) {
	timer := NewIdleTimer(0, func() { t.Fatal("disabled timer fired") })
	timer.Touch()
	timer.Stop()
	assert.NotNil(t, timer)
}
