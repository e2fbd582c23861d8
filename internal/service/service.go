package service

import (
	"context"
	"time"

	"controlling_heating/internal/engine"
	"controlling_heating/internal/logger"
	"controlling_heating/internal/models"
	"controlling_heating/internal/repository"
	"controlling_heating/internal/schedule"
)

type Authorization interface {
	SignUp(username, password, household string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (Identity, error)
}

// Schedule manages heating periods of a household.
type Schedule interface {
	List(ctx context.Context, householdID int) ([]models.HeatingPeriod, error)
	Create(ctx context.Context, householdID, userID int, in PeriodInput) (models.HeatingPeriod, error)
	Update(ctx context.Context, householdID, id int, in PeriodInput) (models.HeatingPeriod, error)
	Delete(ctx context.Context, householdID, id int) error
}

// Systems manages heating systems and drives their running engines.
type Systems interface {
	Create(ctx context.Context, householdID int, in SystemInput) (models.HeatingSystem, error)
	Update(ctx context.Context, householdID, id int, in SystemInput) (models.HeatingSystem, error)
	List(ctx context.Context, householdID int) ([]models.HeatingSystem, error)
	Start(ctx context.Context, householdID, id int) (models.SystemStatus, error)
	Stop(ctx context.Context, householdID, id int) error
	Status(ctx context.Context, householdID, id int) (models.SystemStatus, error)
	StatusAll(ctx context.Context, householdID int) []models.SystemStatus
	ToggleProgram(ctx context.Context, householdID, id int) (models.SystemStatus, error)
	SetProgram(ctx context.Context, householdID, id int, on bool) (models.SystemStatus, error)
	StartAdvance(ctx context.Context, householdID, id, minutes int) (models.SystemStatus, error)
	CancelAdvance(ctx context.Context, householdID, id int) (models.SystemStatus, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.HeatingEvent, error)
}

// Engines is the subset of the registry the services use.
type Engines interface {
	Start(ctx context.Context, systemID int) (*engine.Engine, error)
	Stop(ctx context.Context, systemID int) error
	Get(systemID, householdID int) (*engine.Engine, error)
	ForHousehold(householdID int) []*engine.Engine
}

// Options carries the configuration the services need.
type Options struct {
	SigningKey     string
	TokenTTL       time.Duration
	Limits         schedule.Limits
	DefaultAdvance time.Duration
	Log            *logger.Logger
}

// Service aggregates all sub-services. Methods with the same name on
// different sub-services are reached through the embedded field.
type Service struct {
	Schedule
	Systems
	EventLog
	Authorization
}

func NewService(repos *repository.Repository, engines Engines, opts Options) *Service {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	return &Service{
		Schedule:      NewScheduleService(repos.Periods, repos.Systems, engines, opts.Limits, opts.Log),
		Systems:       NewSystemService(repos.Systems, repos.Events, engines, opts.DefaultAdvance, opts.Log),
		EventLog:      NewEventLogService(repos.Events),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}
