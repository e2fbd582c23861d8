package schedule

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// Clock is a wall-clock time of day in minutes since midnight.
type Clock int

// ParseClock parses "HH:MM" (or "H:MM").
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: expected HH:MM", s)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

// NormalizeClock rewrites a parseable time as zero-padded "HH:MM" so stored
// values sort lexically. Unparseable input is returned unchanged for Check to
// reject.
func NormalizeClock(s string) string {
	c, err := ParseClock(s)
	if err != nil {
		return s
	}
	return c.String()
}

// ClockOf truncates t to minute resolution.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// interval is a half-open [on, off) window within one day.
type interval struct {
	on, off Clock
}

func parseInterval(on, off string) (interval, error) {
	start, err := ParseClock(on)
	if err != nil {
		return interval{}, err
	}
	end, err := ParseClock(off)
	if err != nil {
		return interval{}, err
	}
	return interval{on: start, off: end}, nil
}

func (i interval) contains(c Clock) bool {
	return i.on <= c && c < i.off
}

func (i interval) overlaps(o interval) bool {
	return i.on < o.off && o.on < i.off
}
