package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"controlling_heating/internal/engine"
	"controlling_heating/internal/models"
	"controlling_heating/internal/registry"
	"controlling_heating/internal/relay"
	"controlling_heating/internal/repository"
	"controlling_heating/internal/schedule"
)

// memSystems is an in-memory repository.SystemRepo.
type memSystems struct {
	mu   sync.Mutex
	next int
	rows map[int]models.HeatingSystem
}

func newMemSystems() *memSystems { return &memSystems{rows: map[int]models.HeatingSystem{}} }

func (m *memSystems) Create(_ context.Context, s models.HeatingSystem) (models.HeatingSystem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	s.ID = m.next
	m.rows[s.ID] = s
	return s, nil
}

func (m *memSystems) Update(_ context.Context, s models.HeatingSystem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[s.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Name, cur.SensorURL, cur.GPIOPin, cur.RaspberryPi = s.Name, s.SensorURL, s.GPIOPin, s.RaspberryPi
	m.rows[s.ID] = cur
	return nil
}

func (m *memSystems) Get(_ context.Context, id int) (models.HeatingSystem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return models.HeatingSystem{}, fmt.Errorf("heating system %d: %w", id, repository.ErrNotFound)
	}
	return s, nil
}

func (m *memSystems) ListByHousehold(_ context.Context, householdID int) ([]models.HeatingSystem, error) {
	return m.filter(func(s models.HeatingSystem) bool { return s.HouseholdID == householdID }), nil
}

func (m *memSystems) ListActivated(_ context.Context) ([]models.HeatingSystem, error) {
	return m.filter(func(s models.HeatingSystem) bool { return s.Activated }), nil
}

func (m *memSystems) filter(keep func(models.HeatingSystem) bool) []models.HeatingSystem {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.HeatingSystem
	for _, s := range m.rows {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memSystems) SetActivated(_ context.Context, id int, activated bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.rows[id]
	s.Activated = activated
	m.rows[id] = s
	return nil
}

func (m *memSystems) SetProgramOn(_ context.Context, id int, on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.rows[id]
	s.ProgramOn = on
	m.rows[id] = s
	return nil
}

// memPeriods is an in-memory repository.PeriodRepo.
type memPeriods struct {
	mu      sync.Mutex
	next    int
	rows    map[int]models.HeatingPeriod
	systems *memSystems
}

func newMemPeriods(systems *memSystems) *memPeriods {
	return &memPeriods{rows: map[int]models.HeatingPeriod{}, systems: systems}
}

func (m *memPeriods) ListForSystem(ctx context.Context, systemID int) ([]models.HeatingPeriod, error) {
	sys, err := m.systems.Get(ctx, systemID)
	if err != nil {
		return nil, err
	}
	return m.filter(func(p models.HeatingPeriod) bool {
		return p.SystemID == systemID || (p.AllSystems && p.HouseholdID == sys.HouseholdID)
	}), nil
}

func (m *memPeriods) ListByHousehold(_ context.Context, householdID int) ([]models.HeatingPeriod, error) {
	return m.filter(func(p models.HeatingPeriod) bool { return p.HouseholdID == householdID }), nil
}

func (m *memPeriods) filter(keep func(models.HeatingPeriod) bool) []models.HeatingPeriod {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.HeatingPeriod
	for _, p := range m.rows {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memPeriods) Get(_ context.Context, id int) (models.HeatingPeriod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return models.HeatingPeriod{}, fmt.Errorf("heating period %d: %w", id, repository.ErrNotFound)
	}
	return p, nil
}

func (m *memPeriods) Create(_ context.Context, p models.HeatingPeriod) (models.HeatingPeriod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	p.ID = m.next
	m.rows[p.ID] = p
	return p, nil
}

func (m *memPeriods) Update(_ context.Context, p models.HeatingPeriod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[p.ID]; !ok {
		return repository.ErrNotFound
	}
	m.rows[p.ID] = p
	return nil
}

func (m *memPeriods) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type fixedSensor struct{ temp float64 }

func (s fixedSensor) Fetch(context.Context, string) (models.SensorReadings, error) {
	return models.SensorReadings{Temperature: s.temp}, nil
}

// 2026-10-12 is a Monday.
var mondayMorning = time.Date(2026, time.October, 12, 6, 30, 0, 0, time.UTC)

type fixture struct {
	systems *memSystems
	periods *memPeriods
	events  *fakeEventRepo
	reg     *registry.Registry
	sched   *ScheduleService
	sys     *SystemService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{systems: newMemSystems(), events: &fakeEventRepo{}}
	f.periods = newMemPeriods(f.systems)

	factory := func(sys models.HeatingSystem) (*engine.Engine, error) {
		params := engine.DefaultParams()
		params.LoopInterval = time.Hour
		params.AdvanceInterval = time.Hour
		return engine.New(sys, params, engine.Deps{
			Sensor:  fixedSensor{temp: 15},
			Relay:   relay.NewFake(),
			Periods: f.periods,
			Program: f.systems,
			Now:     func() time.Time { return mondayMorning },
		}), nil
	}
	f.reg = registry.New(factory, f.systems, nil)
	t.Cleanup(f.reg.StopAll)

	f.sched = NewScheduleService(f.periods, f.systems, f.reg, schedule.DefaultLimits, nil)
	f.sys = NewSystemService(f.systems, f.events, f.reg, 30*time.Minute, nil)
	return f
}

func (f *fixture) addSystem(t *testing.T, householdID int) models.HeatingSystem {
	t.Helper()
	sys, err := f.sys.Create(context.Background(), householdID, SystemInput{
		Name: "radiators", SensorURL: "http://192.168.1.20/readings", GPIOPin: 17,
	})
	if err != nil {
		t.Fatalf("create system: %v", err)
	}
	return sys
}
