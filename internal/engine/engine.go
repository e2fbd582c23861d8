// Package engine runs the per-system thermostat control loop.
//
// Each Engine is an actor: Run owns all mutable state and executes ticks,
// commands and advance steps one at a time, so two ticks never overlap.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"controlling_heating/internal/alert"
	"controlling_heating/internal/logger"
	"controlling_heating/internal/metrics"
	"controlling_heating/internal/models"
	"controlling_heating/internal/relay"
	"controlling_heating/internal/sensor"
)

// ErrStopped is returned by commands sent to an engine whose loop has exited.
var ErrStopped = errors.New("engine stopped")

// PeriodSource lists the periods that may apply to a system.
type PeriodSource interface {
	ListForSystem(ctx context.Context, systemID int) ([]models.HeatingPeriod, error)
}

// ProgramStore persists the program on/off flag across restarts.
type ProgramStore interface {
	SetProgramOn(ctx context.Context, systemID int, on bool) error
}

// EventRecorder appends to the heating event log.
type EventRecorder interface {
	Append(ctx context.Context, e models.HeatingEvent) error
}

// Params tunes the control loop.
type Params struct {
	Threshold       float64
	MinimumTemp     float64 // frost protection target
	AdvanceTarget   float64
	LoopInterval    time.Duration
	AdvanceInterval time.Duration
	Location        *time.Location // household wall clock
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Threshold:       0.2,
		MinimumTemp:     5,
		AdvanceTarget:   20,
		LoopInterval:    60 * time.Second,
		AdvanceInterval: 60 * time.Second,
		Location:        time.UTC,
	}
}

// Deps are the collaborators of an Engine. Program, Events, Alerts and
// Metrics are optional.
type Deps struct {
	Sensor  sensor.Gateway
	Relay   relay.Relay
	Periods PeriodSource
	Program ProgramStore
	Events  EventRecorder
	Alerts  alert.Sink
	Metrics *metrics.Metrics
	Log     *logger.Logger
	Now     func() time.Time
}

type command struct {
	fn    func(ctx context.Context)
	reply chan struct{}
}

// Engine controls one relay/sensor pair.
type Engine struct {
	system models.HeatingSystem
	params Params
	deps   Deps
	log    *logger.Logger

	cmds chan command
	done chan struct{}

	// Written only from the loop goroutine; mu lets Status read a consistent view.
	mu            sync.RWMutex
	programOn     bool
	currentPeriod *models.HeatingPeriod
	advance       models.AdvanceState
	errs          models.ErrorState
	readings      *models.SensorReadings
	relayOn       bool
	target        float64
	lastTick      time.Time

	// Loop goroutine only.
	loggedOn   *bool
	advanceGen int
}

// New builds an engine for sys. Call Run to start controlling.
func New(sys models.HeatingSystem, params Params, deps Deps) *Engine {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if params.Location == nil {
		params.Location = time.UTC
	}
	return &Engine{
		system:    sys,
		params:    params,
		deps:      deps,
		log:       deps.Log.With("system_id", sys.ID),
		cmds:      make(chan command),
		done:      make(chan struct{}),
		programOn: sys.ProgramOn,
		target:    params.MinimumTemp,
	}
}

// ID returns the heating system id.
func (e *Engine) ID() int { return e.system.ID }

// HouseholdID returns the owning household.
func (e *Engine) HouseholdID() int { return e.system.HouseholdID }

// Done is closed once Run has returned.
func (e *Engine) Done() <-chan struct{} { return e.done }

// Run ticks immediately and then every LoopInterval until ctx is cancelled.
// On exit the relay is switched off and released.
func (e *Engine) Run(ctx context.Context) {
	e.log.Infow("main_loop_starting", "sensor_url", e.system.SensorURL, "gpio_pin", e.system.GPIOPin)
	defer close(e.done)
	defer e.release()

	e.tick(ctx)

	t := time.NewTicker(e.params.LoopInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			e.log.Infow("main_loop_stopped")
			return
		case <-t.C:
			e.tick(ctx)
		case cmd := <-e.cmds:
			cmd.fn(ctx)
			close(cmd.reply)
		}
	}
}

func (e *Engine) release() {
	if err := e.deps.Relay.TurnOff(); err != nil {
		e.log.Errorw("relay_switch_off_failed", "err", err)
	}
	if err := e.deps.Relay.Close(); err != nil {
		e.log.Errorw("relay_close_failed", "err", err)
	}
	e.deps.Metrics.Forget(e.system.ID)
}

// do runs fn on the loop goroutine and waits for it to finish.
func (e *Engine) do(ctx context.Context, fn func(ctx context.Context)) error {
	cmd := command{fn: fn, reply: make(chan struct{})}
	select {
	case e.cmds <- cmd:
	case <-e.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-cmd.reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Tick forces a synchronous control pass.
func (e *Engine) Tick(ctx context.Context) error {
	return e.do(ctx, e.tick)
}

// TurnProgramOn enables the schedule and ticks immediately.
func (e *Engine) TurnProgramOn(ctx context.Context) error {
	return e.do(ctx, func(ctx context.Context) { e.setProgram(ctx, true) })
}

// TurnProgramOff disables the schedule, clears the current period and ticks
// immediately. Frost protection stays active.
func (e *Engine) TurnProgramOff(ctx context.Context) error {
	return e.do(ctx, func(ctx context.Context) { e.setProgram(ctx, false) })
}

func (e *Engine) setProgram(ctx context.Context, on bool) {
	e.mu.Lock()
	changed := e.programOn != on
	e.programOn = on
	if !on {
		e.currentPeriod = nil
	}
	e.mu.Unlock()

	if changed {
		if e.deps.Program != nil {
			if err := e.deps.Program.SetProgramOn(ctx, e.system.ID, on); err != nil {
				e.log.Errorw("persist_program_failed", "err", err, "program_on", on)
			}
		}
		typ, desc := models.EventProgramOff, "Program switched off"
		if on {
			typ, desc = models.EventProgramOn, "Program switched on"
		}
		e.log.Infow("program_changed", "program_on", on)
		e.record(ctx, typ, desc, nil)
	}
	e.tick(ctx)
}

// Status returns a snapshot of the engine state. The relay is read from
// hardware; the last observed state is used if the read fails.
func (e *Engine) Status() models.SystemStatus {
	e.mu.RLock()
	st := models.SystemStatus{
		SystemID:    e.system.ID,
		HouseholdID: e.system.HouseholdID,
		ProgramOn:   e.programOn,
		RelayOn:     e.relayOn,
		Target:      e.target,
		Advance:     e.advance,
		Errors:      e.errs,
		LastTick:    e.lastTick,
	}
	if e.readings != nil {
		r := *e.readings
		st.SensorReadings = &r
	}
	if e.currentPeriod != nil {
		p := *e.currentPeriod
		st.CurrentPeriod = &p
	}
	e.mu.RUnlock()

	if on, err := e.deps.Relay.IsOn(); err == nil {
		st.RelayOn = on
	}
	return st
}

func (e *Engine) now() time.Time {
	return e.deps.Now().In(e.params.Location)
}

func (e *Engine) record(ctx context.Context, typ, desc string, meta map[string]any) {
	if e.deps.Events == nil {
		return
	}
	err := e.deps.Events.Append(ctx, models.HeatingEvent{
		SystemID:    e.system.ID,
		OccurredAt:  e.deps.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil {
		e.log.Errorw("event_append_failed", "err", err, "type", typ)
	}
}

func (e *Engine) notify(ctx context.Context, msg string) {
	if e.deps.Alerts == nil {
		return
	}
	if err := e.deps.Alerts.Notify(ctx, msg); err != nil {
		e.log.Errorw("alert_failed", "err", err)
	}
}
