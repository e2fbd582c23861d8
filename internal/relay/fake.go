package relay

import (
	"errors"
	"sync"
)

// ErrFakeClosed is returned by a Fake after Close.
var ErrFakeClosed = errors.New("relay: closed")

// Fake is an in-memory relay that records hardware writes.
type Fake struct {
	mu     sync.Mutex
	on     bool
	writes int
	closed bool

	// WriteError, if set, is returned by TurnOn/TurnOff.
	WriteError error
	// ReadError, if set, is returned by IsOn.
	ReadError error
}

var _ Relay = (*Fake)(nil)

// NewFake returns a relay that starts off.
func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) IsOn() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ReadError != nil {
		return false, f.ReadError
	}
	return f.on, nil
}

func (f *Fake) TurnOn() error { return f.set(true) }

func (f *Fake) TurnOff() error { return f.set(false) }

func (f *Fake) set(on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrFakeClosed
	}
	if f.WriteError != nil {
		return f.WriteError
	}
	f.on = on
	f.writes++
	return nil
}

// Writes returns how many times the relay was written.
func (f *Fake) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

// On returns the logical state without error injection.
func (f *Fake) On() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}

// Closed reports whether Close was called.
func (f *Fake) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.on = false
	f.closed = true
	return nil
}
