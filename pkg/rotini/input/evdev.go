package input

import (
	"fmt"
	"sync"

	"github.com/holoplot/go-evdev"
)

// EvdevConfig names the /dev/input nodes an EvdevSource reads. A rotary
// encoder shows up as an EV_REL axis (one detent per event, sign is the
// direction); the push button is an EV_KEY on the same or a separate node.
type EvdevConfig struct {
	// EncoderDevice is the event node carrying the EV_REL rotation axis.
	EncoderDevice string
	// ButtonDevice is the event node carrying the button. Empty or equal to
	// EncoderDevice means the encoder node carries the key events too.
	ButtonDevice string
	// ButtonCode selects the key; zero means KEY_ENTER.
	ButtonCode evdev.EvCode
}

// EvdevSource turns evdev events from a rotary encoder and button into the
// three menu input events.
type EvdevSource struct {
	encoder *evdev.InputDevice
	button  *evdev.InputDevice

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// OpenEvdev opens the configured input devices and starts reading.
func OpenEvdev(cfg EvdevConfig) (*EvdevSource, error) {
	if cfg.ButtonCode == 0 {
		cfg.ButtonCode = evdev.KEY_ENTER
	}

	encoder, err := evdev.Open(cfg.EncoderDevice)
	if err != nil {
		return nil, fmt.Errorf("input: open encoder %s: %w", cfg.EncoderDevice, err)
	}

	var button *evdev.InputDevice
	if cfg.ButtonDevice != "" && cfg.ButtonDevice != cfg.EncoderDevice {
		button, err = evdev.Open(cfg.ButtonDevice)
		if err != nil {
			encoder.Close()
			return nil, fmt.Errorf("input: open button %s: %w", cfg.ButtonDevice, err)
		}
	}

	s := &EvdevSource{
		encoder: encoder,
		button:  button,
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
	}
	go s.read(encoder, cfg.ButtonCode)
	if button != nil {
		go s.read(button, cfg.ButtonCode)
	}
	return s, nil
}

func (s *EvdevSource) read(dev *evdev.InputDevice, buttonCode evdev.EvCode) {
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			// Device went away or the source was closed.
			return
		}
		var out Event
		switch {
		case ev.Type == evdev.EV_REL && ev.Value > 0:
			out = RotateRight
		case ev.Type == evdev.EV_REL && ev.Value < 0:
			out = RotateLeft
		case ev.Type == evdev.EV_KEY && ev.Code == buttonCode && ev.Value == 1:
			out = Press
		default:
			continue
		}
		select {
		case s.events <- out:
		case <-s.done:
			return
		}
	}
}

func (s *EvdevSource) Events() <-chan Event {
	return s.events
}

func (s *EvdevSource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.encoder.Close()
		if s.button != nil {
			if berr := s.button.Close(); err == nil {
				err = berr
			}
		}
	})
	return err
}
