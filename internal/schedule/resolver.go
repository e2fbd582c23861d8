// Package schedule resolves the active heating period and guards the
// no-overlap invariant of a weekly schedule.
package schedule

import (
	"sort"
	"time"

	"controlling_heating/internal/models"
)

// Resolve returns the period active at now for systemID, if any.
//
// Periods whose times cannot be parsed are skipped. If the stored schedule
// contains overlapping periods the one with the earliest time_on wins.
func Resolve(periods []models.HeatingPeriod, systemID int, now time.Time) (*models.HeatingPeriod, bool) {
	type candidate struct {
		period models.HeatingPeriod
		window interval
	}

	weekday := now.Weekday()
	clock := ClockOf(now)

	matches := make([]candidate, 0, 2)
	for _, p := range periods {
		if !p.AppliesTo(systemID) || !p.Days.On(weekday) {
			continue
		}
		w, err := parseInterval(p.TimeOn, p.TimeOff)
		if err != nil {
			continue
		}
		if w.contains(clock) {
			matches = append(matches, candidate{period: p, window: w})
		}
	}
	if len(matches) == 0 {
		return nil, false
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].window.on != matches[j].window.on {
			return matches[i].window.on < matches[j].window.on
		}
		return matches[i].period.ID < matches[j].period.ID
	})
	p := matches[0].period
	return &p, true
}
