package service

import (
	"context"
	"fmt"

	"controlling_heating/internal/logger"
	"controlling_heating/internal/models"
	"controlling_heating/internal/registry"
	"controlling_heating/internal/repository"
	"controlling_heating/internal/schedule"
)

// ScheduleService validates and stores heating periods. Writes for one
// household are serialized so the overlap check and the insert are atomic
// with respect to each other.
type ScheduleService struct {
	periods repository.PeriodRepo
	systems repository.SystemRepo
	engines Engines
	limits  schedule.Limits
	log     *logger.Logger

	locks keyedMutex
}

func NewScheduleService(periods repository.PeriodRepo, systems repository.SystemRepo, engines Engines, limits schedule.Limits, log *logger.Logger) *ScheduleService {
	if limits == (schedule.Limits{}) {
		limits = schedule.DefaultLimits
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ScheduleService{periods: periods, systems: systems, engines: engines, limits: limits, log: log}
}

func (in PeriodInput) period(householdID int) models.HeatingPeriod {
	p := models.HeatingPeriod{
		HouseholdID: householdID,
		SystemID:    in.SystemID,
		AllSystems:  in.AllSystems,
		TimeOn:      schedule.NormalizeClock(in.TimeOn),
		TimeOff:     schedule.NormalizeClock(in.TimeOff),
		Target:      in.Target,
		Days:        in.Days,
	}
	if p.AllSystems {
		p.SystemID = 0
	}
	return p
}

func (s *ScheduleService) List(ctx context.Context, householdID int) ([]models.HeatingPeriod, error) {
	return s.periods.ListByHousehold(ctx, householdID)
}

func (s *ScheduleService) Create(ctx context.Context, householdID, userID int, in PeriodInput) (models.HeatingPeriod, error) {
	p := in.period(householdID)
	p.CreatedBy = userID

	var created models.HeatingPeriod
	err := s.write(ctx, householdID, func() error {
		if err := s.validate(ctx, p); err != nil {
			return err
		}
		var err error
		created, err = s.periods.Create(ctx, p)
		return err
	})
	if err != nil {
		return models.HeatingPeriod{}, err
	}
	s.log.Infow("period_created", "household_id", householdID, "period_id", created.ID,
		"system_id", created.SystemID, "all_systems", created.AllSystems)
	return created, nil
}

func (s *ScheduleService) Update(ctx context.Context, householdID, id int, in PeriodInput) (models.HeatingPeriod, error) {
	p := in.period(householdID)
	p.ID = id

	err := s.write(ctx, householdID, func() error {
		current, err := s.owned(ctx, householdID, id)
		if err != nil {
			return err
		}
		p.CreatedBy, p.CreatedAt = current.CreatedBy, current.CreatedAt
		if err := s.validate(ctx, p); err != nil {
			return err
		}
		return s.periods.Update(ctx, p)
	})
	if err != nil {
		return models.HeatingPeriod{}, err
	}
	s.log.Infow("period_updated", "household_id", householdID, "period_id", id)
	return p, nil
}

func (s *ScheduleService) Delete(ctx context.Context, householdID, id int) error {
	err := s.write(ctx, householdID, func() error {
		if _, err := s.owned(ctx, householdID, id); err != nil {
			return err
		}
		return s.periods.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.log.Infow("period_deleted", "household_id", householdID, "period_id", id)
	return nil
}

// write runs fn under the household lock and, on success, makes the running
// engines of the household pick up the new schedule.
func (s *ScheduleService) write(ctx context.Context, householdID int, fn func() error) error {
	unlock := s.locks.lock(householdID)
	err := fn()
	unlock()
	if err != nil {
		return err
	}
	s.refresh(ctx, householdID)
	return nil
}

func (s *ScheduleService) validate(ctx context.Context, p models.HeatingPeriod) error {
	if err := schedule.Check(p, s.limits); err != nil {
		return err
	}
	if !p.AllSystems {
		sys, err := s.systems.Get(ctx, p.SystemID)
		if err != nil {
			return err
		}
		if sys.HouseholdID != p.HouseholdID {
			return fmt.Errorf("heating system %d: %w", p.SystemID, registry.ErrUnauthorized)
		}
	}
	existing, err := s.periods.ListByHousehold(ctx, p.HouseholdID)
	if err != nil {
		return err
	}
	return schedule.Validate(p, existing, s.limits)
}

func (s *ScheduleService) owned(ctx context.Context, householdID, id int) (models.HeatingPeriod, error) {
	p, err := s.periods.Get(ctx, id)
	if err != nil {
		return models.HeatingPeriod{}, err
	}
	if p.HouseholdID != householdID {
		return models.HeatingPeriod{}, fmt.Errorf("heating period %d: %w", id, registry.ErrUnauthorized)
	}
	return p, nil
}

func (s *ScheduleService) refresh(ctx context.Context, householdID int) {
	if s.engines == nil {
		return
	}
	for _, eng := range s.engines.ForHousehold(householdID) {
		if err := eng.Tick(ctx); err != nil {
			s.log.Warnw("engine_refresh_failed", "system_id", eng.ID(), "err", err)
		}
	}
}
