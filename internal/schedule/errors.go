package schedule

import (
	"errors"
	"fmt"

	"controlling_heating/internal/models"
)

// ErrOverlap matches any *OverlapError via errors.Is.
var ErrOverlap = errors.New("period overlaps with another")

// ErrInvalidPeriod matches any *ValidationError via errors.Is.
var ErrInvalidPeriod = errors.New("invalid period")

// ValidationError reports a malformed period.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid period: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidPeriod }

// OverlapError names the existing period a new or updated one collides with.
type OverlapError struct {
	Conflict models.HeatingPeriod
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("period overlaps with period %d (%s-%s)", e.Conflict.ID, e.Conflict.TimeOn, e.Conflict.TimeOff)
}

func (e *OverlapError) Is(target error) bool { return target == ErrOverlap }
