package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"controlling_heating/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type Authorization interface {
	CreateHousehold(name string) (int, error)
	Create(username, hash string, householdID int) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// PeriodRepo is the schedule store.
type PeriodRepo interface {
	ListForSystem(ctx context.Context, systemID int) ([]models.HeatingPeriod, error)
	ListByHousehold(ctx context.Context, householdID int) ([]models.HeatingPeriod, error)
	Get(ctx context.Context, id int) (models.HeatingPeriod, error)
	Create(ctx context.Context, p models.HeatingPeriod) (models.HeatingPeriod, error)
	Update(ctx context.Context, p models.HeatingPeriod) error
	Delete(ctx context.Context, id int) error
}

// SystemRepo holds heating system metadata.
type SystemRepo interface {
	Create(ctx context.Context, s models.HeatingSystem) (models.HeatingSystem, error)
	Update(ctx context.Context, s models.HeatingSystem) error
	Get(ctx context.Context, id int) (models.HeatingSystem, error)
	ListByHousehold(ctx context.Context, householdID int) ([]models.HeatingSystem, error)
	ListActivated(ctx context.Context) ([]models.HeatingSystem, error)
	SetActivated(ctx context.Context, id int, activated bool) error
	SetProgramOn(ctx context.Context, id int, on bool) error
}

// EventFilter narrows an event listing. Zero fields are ignored.
type EventFilter struct {
	From        time.Time
	To          time.Time
	Type        string
	SystemID    int
	HouseholdID int
}

type EventRepo interface {
	Append(ctx context.Context, e models.HeatingEvent) error
	List(ctx context.Context, f EventFilter) ([]models.HeatingEvent, error)
}

type Repository struct {
	Periods PeriodRepo
	Systems SystemRepo
	Events  EventRepo
	Auth    Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Periods: NewPeriodSQLite(db),
		Systems: NewSystemSQLite(db),
		Events:  NewEventSQLite(db),
		Auth:    NewUserRepository(db),
	}
}
