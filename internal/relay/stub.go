//go:build !linux

package relay

import "errors"

// GPIO is not available on non-Linux platforms.
type GPIO struct{}

// NewGPIO returns an error on non-Linux platforms.
func NewGPIO(chipName string, pin, pinOnState int) (*GPIO, error) {
	return nil, errors.New("relay: gpio not supported on this platform (requires Linux)")
}

func (g *GPIO) IsOn() (bool, error) { return false, errors.New("relay: gpio not supported") }

func (g *GPIO) TurnOn() error { return errors.New("relay: gpio not supported") }

func (g *GPIO) TurnOff() error { return errors.New("relay: gpio not supported") }

func (g *GPIO) Close() error { return nil }
