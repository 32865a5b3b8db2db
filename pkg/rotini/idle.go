package rotini

import (
	"time"

	"go.uber.org/atomic"
)

// IdleTimer calls a function after a period with no activity. The menu
// timeout pattern arms one with a callback that switches the controller back
// to the main menu, and touches it from the input loop:
//
//	idle := rotini.NewIdleTimer(30*time.Second, func() { ctrl.Handle(...) })
//	for ev := range src.Events() {
//		idle.Touch()
//		ctrl.Handle(ev)
//	}
//
// The fire callback runs on a timer goroutine; it must serialize its own
// access to the controller with the input loop.
type IdleTimer struct {
	d       time.Duration
	fire    func()
	timer   *time.Timer
	stopped atomic.Bool
}

// NewIdleTimer arms a timer that calls fire after d without a Touch.
// A non-positive duration disables the timer entirely.
func NewIdleTimer(d time.Duration, fire func()) *IdleTimer {
	t := &IdleTimer{d: d, fire: fire}
	if d > 0 {
		t.timer = time.AfterFunc(d, t.maybeFire)
	}
	return t
}

func (t *IdleTimer) maybeFire() {
	if t.stopped.Load() {
		return
	}
	t.fire()
}

// Touch resets the countdown.
func (t *IdleTimer) Touch() {
	if t.timer == nil || t.stopped.Load() {
		return
	}
	t.timer.Reset(t.d)
}

// Stop disarms the timer permanently.
func (t *IdleTimer) Stop() {
	if t.stopped.Swap(true) {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
}
