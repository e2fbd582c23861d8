package models

import "time"

// AdvanceState is the transient override of one heating system. Never persisted.
type AdvanceState struct {
	Active bool      `json:"on"`
	Start  time.Time `json:"start,omitempty"`
	End    time.Time `json:"end,omitempty"`
}

// ErrorState debounces sensor failure alerts.
type ErrorState struct {
	Initial   bool `json:"initial"`   // no reading obtained yet
	Temporary bool `json:"temporary"` // a working feed is currently failing
}

// SystemStatus is a point-in-time snapshot of a running engine.
type SystemStatus struct {
	SystemID       int             `json:"system_id"`
	HouseholdID    int             `json:"household_id"`
	ProgramOn      bool            `json:"program_on"`
	RelayOn        bool            `json:"relay_on"`
	Target         float64         `json:"target"`
	SensorReadings *SensorReadings `json:"sensor_readings,omitempty"`
	CurrentPeriod  *HeatingPeriod  `json:"current_period,omitempty"`
	Advance        AdvanceState    `json:"advance"`
	Errors         ErrorState      `json:"errors"`
	LastTick       time.Time       `json:"last_tick,omitempty"`
}
