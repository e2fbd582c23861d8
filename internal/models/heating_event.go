package models

import "time"

// Heating event types.
const (
	EventRelayOn       = "RELAY_ON"
	EventRelayOff      = "RELAY_OFF"
	EventSensorError   = "SENSOR_ERROR"
	EventSensorResumed = "SENSOR_RESUMED"
	EventProgramOn     = "PROGRAM_ON"
	EventProgramOff    = "PROGRAM_OFF"
	EventAdvanceStart  = "ADVANCE_START"
	EventAdvanceStop   = "ADVANCE_STOP"
	EventSystemStart   = "SYSTEM_START"
	EventSystemStop    = "SYSTEM_STOP"
)

// HeatingEvent is a single log entry.
type HeatingEvent struct {
	EventID     string    `json:"event_id"`
	SystemID    int       `json:"system_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // RELAY_ON | RELAY_OFF | SENSOR_ERROR | ...
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
