package models

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
	HouseholdID  int    `json:"household_id"`
}

// Household groups users and the heating systems they may control.
type Household struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
