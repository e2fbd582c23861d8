package service

import (
	"errors"
	"time"

	"controlling_heating/internal/models"
)

// PeriodInput is the user-editable part of a heating period.
type PeriodInput struct {
	SystemID   int
	AllSystems bool
	TimeOn     string
	TimeOff    string
	Target     float64
	Days       models.Days
}

// SystemInput is the user-editable part of a heating system.
type SystemInput struct {
	Name        string
	SensorURL   string
	GPIOPin     int
	RaspberryPi string
}

// LogFilter supports history filtering by time range, type and system.
type LogFilter struct {
	From        time.Time // inclusive; zero means no lower bound
	To          time.Time // inclusive; zero means no upper bound
	Type        string    // "", "RELAY_ON", "SENSOR_ERROR", ...
	SystemID    int       // zero means every system of the household
	HouseholdID int
}

// ErrInvalidInput marks a request the caller must fix.
var ErrInvalidInput = errors.New("invalid input")
