//go:build linux

package relay

import (
	"fmt"
	"sync"

	"github.com/warthog618/go-gpiocdev"
)

// GPIO drives a relay wired to a GPIO output line.
type GPIO struct {
	mu         sync.Mutex
	chip       *gpiocdev.Chip
	line       *gpiocdev.Line
	pin        int
	pinOnState int
}

var _ Relay = (*GPIO)(nil)

// NewGPIO requests pin on chipName as an output, initially off.
func NewGPIO(chipName string, pin, pinOnState int) (*GPIO, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}

	line, err := chip.RequestLine(pin, gpiocdev.AsOutput(offLevel(pinOnState)))
	if err != nil {
		_ = chip.Close()
		return nil, fmt.Errorf("request relay pin %d: %w", pin, err)
	}

	return &GPIO{chip: chip, line: line, pin: pin, pinOnState: pinOnState}, nil
}

// IsOn reads the line and compares against the configured on-level.
func (g *GPIO) IsOn() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, err := g.line.Value()
	if err != nil {
		return false, fmt.Errorf("read relay pin %d: %w", g.pin, err)
	}
	return isOnLevel(v, g.pinOnState), nil
}

func (g *GPIO) TurnOn() error { return g.set(true) }

func (g *GPIO) TurnOff() error { return g.set(false) }

func (g *GPIO) set(on bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.line.SetValue(levelFor(on, g.pinOnState)); err != nil {
		return fmt.Errorf("write relay pin %d: %w", g.pin, err)
	}
	return nil
}

// Close switches the relay off and releases the line and chip.
func (g *GPIO) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var errs []error
	if g.line != nil {
		if err := g.line.SetValue(offLevel(g.pinOnState)); err != nil {
			errs = append(errs, fmt.Errorf("switch off pin %d: %w", g.pin, err))
		}
		if err := g.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pin %d: %w", g.pin, err))
		}
	}
	if g.chip != nil {
		if err := g.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
