package controlling_heating

import "controlling_heating/internal/models"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"heating system is not running"`
}

// IDResponse is returned after creating a user.
type IDResponse struct {
	ID int `json:"id" example:"1"`
}

// TokenResponse is returned after a successful sign-in.
type TokenResponse struct {
	Token string `json:"token"`
}

// ActionResponse reports a control action together with the resulting status.
type ActionResponse struct {
	Status string              `json:"status" example:"started"`
	System models.SystemStatus `json:"system"`
}

// StatusListResponse is the household-wide view of running systems.
type StatusListResponse struct {
	Count   int                   `json:"count"`
	Systems []models.SystemStatus `json:"systems"`
}

// SystemListResponse lists configured heating systems.
type SystemListResponse struct {
	Count   int                    `json:"count"`
	Systems []models.HeatingSystem `json:"systems"`
}

// PeriodListResponse lists heating periods.
type PeriodListResponse struct {
	Count   int                    `json:"count"`
	Periods []models.HeatingPeriod `json:"periods"`
}

// EventListResponse lists heating events.
type EventListResponse struct {
	Count  int                   `json:"count"`
	Events []models.HeatingEvent `json:"events"`
}
