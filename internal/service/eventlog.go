package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"controlling_heating/internal/models"
	"controlling_heating/internal/repository"
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

var (
	errInvalidTimeRange = fmt.Errorf("%w: time range: From must be <= To", ErrInvalidInput)
	errNoHousehold      = fmt.Errorf("%w: household is required", ErrInvalidInput)
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f LogFilter) (repository.EventFilter, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return repository.EventFilter{}, errInvalidTimeRange
	}
	if f.HouseholdID == 0 {
		return repository.EventFilter{}, errNoHousehold
	}

	return repository.EventFilter{
		From:        from,
		To:          to,
		Type:        normalizeEventType(f.Type),
		SystemID:    f.SystemID,
		HouseholdID: f.HouseholdID,
	}, nil
}

// List returns the events of the caller's household only.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.HeatingEvent, error) {
	rf, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, rf)
}
