package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"controlling_heating/internal/logger"
	"controlling_heating/internal/models"
	"controlling_heating/internal/registry"
	"controlling_heating/internal/repository"
)

const maxAdvanceMinutes = 24 * 60

type SystemService struct {
	systems repository.SystemRepo
	events  repository.EventRepo
	engines Engines

	defaultAdvance time.Duration
	log            *logger.Logger
}

func NewSystemService(systems repository.SystemRepo, events repository.EventRepo, engines Engines, defaultAdvance time.Duration, log *logger.Logger) *SystemService {
	if defaultAdvance <= 0 {
		defaultAdvance = 30 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SystemService{systems: systems, events: events, engines: engines, defaultAdvance: defaultAdvance, log: log}
}

func (in SystemInput) validate() error {
	u, err := url.Parse(strings.TrimSpace(in.SensorURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: sensor_url must be an absolute http(s) URL", ErrInvalidInput)
	}
	if in.GPIOPin < 0 {
		return fmt.Errorf("%w: gpio_pin must not be negative", ErrInvalidInput)
	}
	return nil
}

func (in SystemInput) apply(sys *models.HeatingSystem) {
	sys.Name = strings.TrimSpace(in.Name)
	sys.SensorURL = strings.TrimSpace(in.SensorURL)
	sys.GPIOPin = in.GPIOPin
	sys.RaspberryPi = strings.TrimSpace(in.RaspberryPi)
}

func (s *SystemService) Create(ctx context.Context, householdID int, in SystemInput) (models.HeatingSystem, error) {
	if err := in.validate(); err != nil {
		return models.HeatingSystem{}, err
	}
	sys := models.HeatingSystem{HouseholdID: householdID}
	in.apply(&sys)
	created, err := s.systems.Create(ctx, sys)
	if err != nil {
		return models.HeatingSystem{}, err
	}
	s.log.Infow("system_created", "household_id", householdID, "system_id", created.ID)
	return created, nil
}

// Update stores new settings. A running engine is restarted so it uses the
// new sensor and relay.
func (s *SystemService) Update(ctx context.Context, householdID, id int, in SystemInput) (models.HeatingSystem, error) {
	if err := in.validate(); err != nil {
		return models.HeatingSystem{}, err
	}
	sys, err := s.owned(ctx, householdID, id)
	if err != nil {
		return models.HeatingSystem{}, err
	}
	in.apply(&sys)
	if err := s.systems.Update(ctx, sys); err != nil {
		return models.HeatingSystem{}, err
	}

	if _, err := s.engines.Get(id, householdID); err == nil {
		if err := s.engines.Stop(ctx, id); err != nil {
			return models.HeatingSystem{}, err
		}
		if _, err := s.engines.Start(ctx, id); err != nil {
			return models.HeatingSystem{}, err
		}
		s.log.Infow("system_restarted", "system_id", id)
	}
	return sys, nil
}

func (s *SystemService) List(ctx context.Context, householdID int) ([]models.HeatingSystem, error) {
	return s.systems.ListByHousehold(ctx, householdID)
}

func (s *SystemService) Start(ctx context.Context, householdID, id int) (models.SystemStatus, error) {
	if _, err := s.owned(ctx, householdID, id); err != nil {
		return models.SystemStatus{}, err
	}
	eng, err := s.engines.Start(ctx, id)
	if err != nil {
		return models.SystemStatus{}, err
	}
	s.record(ctx, id, models.EventSystemStart, "Heating system started")
	return eng.Status(), nil
}

func (s *SystemService) Stop(ctx context.Context, householdID, id int) error {
	if _, err := s.engines.Get(id, householdID); err != nil {
		return err
	}
	if err := s.engines.Stop(ctx, id); err != nil {
		return err
	}
	s.record(ctx, id, models.EventSystemStop, "Heating system stopped")
	return nil
}

func (s *SystemService) Status(_ context.Context, householdID, id int) (models.SystemStatus, error) {
	eng, err := s.engines.Get(id, householdID)
	if err != nil {
		return models.SystemStatus{}, err
	}
	return eng.Status(), nil
}

// StatusAll returns the status of every running system of the household.
func (s *SystemService) StatusAll(_ context.Context, householdID int) []models.SystemStatus {
	engines := s.engines.ForHousehold(householdID)
	out := make([]models.SystemStatus, 0, len(engines))
	for _, eng := range engines {
		out = append(out, eng.Status())
	}
	return out
}

func (s *SystemService) ToggleProgram(ctx context.Context, householdID, id int) (models.SystemStatus, error) {
	eng, err := s.engines.Get(id, householdID)
	if err != nil {
		return models.SystemStatus{}, err
	}
	return s.SetProgram(ctx, householdID, id, !eng.Status().ProgramOn)
}

func (s *SystemService) SetProgram(ctx context.Context, householdID, id int, on bool) (models.SystemStatus, error) {
	eng, err := s.engines.Get(id, householdID)
	if err != nil {
		return models.SystemStatus{}, err
	}
	if on {
		err = eng.TurnProgramOn(ctx)
	} else {
		err = eng.TurnProgramOff(ctx)
	}
	if err != nil {
		return models.SystemStatus{}, err
	}
	return eng.Status(), nil
}

// StartAdvance overrides the schedule for minutes, or the configured default
// when minutes is zero.
func (s *SystemService) StartAdvance(ctx context.Context, householdID, id, minutes int) (models.SystemStatus, error) {
	if minutes < 0 || minutes > maxAdvanceMinutes {
		return models.SystemStatus{}, fmt.Errorf("%w: minutes must be between 1 and %d", ErrInvalidInput, maxAdvanceMinutes)
	}
	d := s.defaultAdvance
	if minutes > 0 {
		d = time.Duration(minutes) * time.Minute
	}
	eng, err := s.engines.Get(id, householdID)
	if err != nil {
		return models.SystemStatus{}, err
	}
	if _, err := eng.StartAdvance(ctx, d); err != nil {
		return models.SystemStatus{}, err
	}
	return eng.Status(), nil
}

func (s *SystemService) CancelAdvance(ctx context.Context, householdID, id int) (models.SystemStatus, error) {
	eng, err := s.engines.Get(id, householdID)
	if err != nil {
		return models.SystemStatus{}, err
	}
	if err := eng.CancelAdvance(ctx); err != nil {
		return models.SystemStatus{}, err
	}
	return eng.Status(), nil
}

func (s *SystemService) owned(ctx context.Context, householdID, id int) (models.HeatingSystem, error) {
	sys, err := s.systems.Get(ctx, id)
	if err != nil {
		return models.HeatingSystem{}, err
	}
	if sys.HouseholdID != householdID {
		return models.HeatingSystem{}, fmt.Errorf("heating system %d: %w", id, registry.ErrUnauthorized)
	}
	return sys, nil
}

func (s *SystemService) record(ctx context.Context, systemID int, typ, desc string) {
	if s.events == nil {
		return
	}
	err := s.events.Append(ctx, models.HeatingEvent{SystemID: systemID, Type: typ, Description: desc})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Errorw("event_append_failed", "system_id", systemID, "type", typ, "err", err)
	}
}
