// Package relay drives the heating relay with boolean semantics.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package relay

import "controlling_heating/internal/models"

// Relay switches one heating relay. Implementations hide electrical levels.
type Relay interface {
	// IsOn reports whether the relay is currently energised (logically on).
	IsOn() (bool, error)
	TurnOn() error
	TurnOff() error
	// Close releases hardware resources, leaving the relay off.
	Close() error
}

// Options configures how relays are opened.
type Options struct {
	Chip       string // default gpio chip, e.g. "gpiochip0"
	PinOnState int    // electrical level that means "on" (0 = active low)
	Fake       bool   // use in-memory relays instead of hardware
}

// Opener builds the relay for one heating system.
type Opener func(sys models.HeatingSystem) (Relay, error)

// NewOpener returns an Opener honouring opts.
func NewOpener(opts Options) Opener {
	return func(sys models.HeatingSystem) (Relay, error) {
		if opts.Fake {
			return NewFake(), nil
		}
		chip := opts.Chip
		if sys.RaspberryPi != "" {
			chip = sys.RaspberryPi
		}
		return NewGPIO(chip, sys.GPIOPin, opts.PinOnState)
	}
}

// levelFor maps a logical state to the electrical level for the given polarity.
func levelFor(on bool, pinOnState int) int {
	if on {
		return pinOnState
	}
	return offLevel(pinOnState)
}

func offLevel(pinOnState int) int {
	if pinOnState == 0 {
		return 1
	}
	return 0
}

// isOnLevel reports whether an electrical level means "on" for the given polarity.
func isOnLevel(level, pinOnState int) bool {
	return level == pinOnState
}
