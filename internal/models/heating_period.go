package models

import "time"

// Days holds the weekdays a period applies to.
type Days struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

// On reports whether the given weekday is selected.
func (d Days) On(w time.Weekday) bool {
	switch w {
	case time.Monday:
		return d.Monday
	case time.Tuesday:
		return d.Tuesday
	case time.Wednesday:
		return d.Wednesday
	case time.Thursday:
		return d.Thursday
	case time.Friday:
		return d.Friday
	case time.Saturday:
		return d.Saturday
	case time.Sunday:
		return d.Sunday
	}
	return false
}

// Any reports whether at least one weekday is selected.
func (d Days) Any() bool {
	return d.Monday || d.Tuesday || d.Wednesday || d.Thursday || d.Friday || d.Saturday || d.Sunday
}

// Intersects reports whether d and o share at least one weekday.
func (d Days) Intersects(o Days) bool {
	for w := time.Sunday; w <= time.Saturday; w++ {
		if d.On(w) && o.On(w) {
			return true
		}
	}
	return false
}

// HeatingPeriod is a weekly recurring window with a target temperature.
type HeatingPeriod struct {
	ID          int       `json:"period_id"`
	HouseholdID int       `json:"household_id"`
	SystemID    int       `json:"heating_system_id"`
	AllSystems  bool      `json:"all_systems"`
	TimeOn      string    `json:"time_on"`  // HH:MM
	TimeOff     string    `json:"time_off"` // HH:MM
	Target      float64   `json:"target"`
	Days        Days      `json:"days"`
	CreatedBy   int       `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created"`
}

// AppliesTo reports whether the period targets the given system.
func (p HeatingPeriod) AppliesTo(systemID int) bool {
	return p.AllSystems || p.SystemID == systemID
}
