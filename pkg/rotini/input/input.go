// Package input defines the event stream feeding a rotini controller and an
// evdev-backed source for rotary encoder hardware. Events carry no payload;
// debouncing and electrical signal handling happen upstream.
package input

// Event is one discrete input occurrence.
type Event int

const (
	RotateLeft Event = iota
	RotateRight
	Press
)

func (e Event) String() string {
	switch e {
	case RotateLeft:
		return "rotate_left"
	case RotateRight:
		return "rotate_right"
	case Press:
		return "press"
	default:
		return "unknown"
	}
}

// Source produces input events. Exactly one consumer reads the channel;
// the core processes each event to completion before taking the next.
type Source interface {
	Events() <-chan Event
	Close() error
}
