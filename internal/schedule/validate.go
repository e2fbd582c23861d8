package schedule

import (
	"fmt"

	"controlling_heating/internal/models"
)

// Limits bounds the target temperature of a period.
type Limits struct {
	MinTarget float64
	MaxTarget float64
}

// DefaultLimits matches the range accepted by the heating API.
var DefaultLimits = Limits{MinTarget: 5, MaxTarget: 30}

// Check validates a single period in isolation.
func Check(p models.HeatingPeriod, lim Limits) error {
	on, err := ParseClock(p.TimeOn)
	if err != nil {
		return &ValidationError{Field: "time_on", Reason: err.Error()}
	}
	off, err := ParseClock(p.TimeOff)
	if err != nil {
		return &ValidationError{Field: "time_off", Reason: err.Error()}
	}
	if on >= off {
		return &ValidationError{Field: "time_on", Reason: "on-time must be before off-time"}
	}
	if p.Target < lim.MinTarget || p.Target > lim.MaxTarget {
		return &ValidationError{
			Field:  "target",
			Reason: fmt.Sprintf("must be between %g and %g (%g is not)", lim.MinTarget, lim.MaxTarget, p.Target),
		}
	}
	if !p.Days.Any() {
		return &ValidationError{Field: "days", Reason: "at least one weekday is required"}
	}
	if !p.AllSystems && p.SystemID == 0 {
		return &ValidationError{Field: "heating_system_id", Reason: "required unless all_systems is set"}
	}
	return nil
}

// Validate checks p against lim and against existing periods of the same
// household. The period being updated (same ID) is ignored.
func Validate(p models.HeatingPeriod, existing []models.HeatingPeriod, lim Limits) error {
	if err := Check(p, lim); err != nil {
		return err
	}
	window, _ := parseInterval(p.TimeOn, p.TimeOff)

	for _, e := range existing {
		if p.ID != 0 && e.ID == p.ID {
			continue
		}
		if !sharesSystem(p, e) || !p.Days.Intersects(e.Days) {
			continue
		}
		other, err := parseInterval(e.TimeOn, e.TimeOff)
		if err != nil {
			continue
		}
		if window.overlaps(other) {
			return &OverlapError{Conflict: e}
		}
	}
	return nil
}

func sharesSystem(a, b models.HeatingPeriod) bool {
	return a.AllSystems || b.AllSystems || a.SystemID == b.SystemID
}
