package models

// HeatingSystem is the persisted configuration of one relay+sensor pair.
type HeatingSystem struct {
	ID          int    `json:"system_id"`
	HouseholdID int    `json:"household_id"`
	Name        string `json:"name"`
	SensorURL   string `json:"sensor_url"`
	GPIOPin     int    `json:"gpio_pin"`
	RaspberryPi string `json:"raspberry_pi,omitempty"` // gpio chip name; empty means the configured default
	ProgramOn   bool   `json:"program_on"`
	Activated   bool   `json:"activated"`
}

// SensorReadings is the body returned by a sensor endpoint.
type SensorReadings struct {
	Temperature float64 `json:"temperature"`
	Pressure    float64 `json:"pressure"`
	Humidity    float64 `json:"humidity"`
}
