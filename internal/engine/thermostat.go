package engine

import (
	"context"
	"fmt"
	"time"

	"controlling_heating/internal/models"
	"controlling_heating/internal/schedule"
)

// tick is one control pass. It runs on the loop goroutine only.
func (e *Engine) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Errorw("tick_panicked", "panic", r)
			e.setRelay(ctx, false)
		}
	}()

	now := e.now()
	e.mu.Lock()
	e.lastTick = now
	e.mu.Unlock()

	e.expireAdvance(ctx, now)

	reading, err := e.deps.Sensor.Fetch(ctx, e.system.SensorURL)
	if err != nil {
		e.setRelay(ctx, false)
		e.sensorFailed(ctx, err)
		return
	}
	e.sensorResumed(ctx, reading)

	var period *models.HeatingPeriod
	if e.programOn {
		periods, err := e.deps.Periods.ListForSystem(ctx, e.system.ID)
		if err != nil {
			e.log.Errorw("list_periods_failed", "err", err)
			e.setRelay(ctx, false)
			return
		}
		period, _ = schedule.Resolve(periods, e.system.ID, now)
	}

	if period != nil && e.advance.Active {
		e.endAdvance(ctx, "advance_preempted", "Advance ended: schedule period started")
	}

	target := e.targetFor(period)
	e.mu.Lock()
	e.currentPeriod = period
	e.target = target
	e.mu.Unlock()
	e.deps.Metrics.ObserveReading(e.system.ID, reading.Temperature, target)

	switch {
	case reading.Temperature <= target-e.params.Threshold:
		e.setRelay(ctx, true)
	case reading.Temperature >= target:
		e.setRelay(ctx, false)
	default:
		e.log.Debugw("within_hysteresis", "temperature", reading.Temperature, "target", target)
	}
}

// targetFor picks the active period target, then the advance target, then
// frost protection.
func (e *Engine) targetFor(period *models.HeatingPeriod) float64 {
	switch {
	case period != nil:
		return period.Target
	case e.advance.Active:
		return e.params.AdvanceTarget
	default:
		return e.params.MinimumTemp
	}
}

// setRelay drives the relay towards on, skipping the write when the
// hardware already matches. Transitions are logged once per change of
// decision, independently of what the hardware reports.
func (e *Engine) setRelay(ctx context.Context, on bool) {
	cur, err := e.deps.Relay.IsOn()
	if err != nil {
		e.log.Warnw("relay_read_failed", "err", err)
	}
	if err != nil || cur != on {
		if on {
			err = e.deps.Relay.TurnOn()
		} else {
			err = e.deps.Relay.TurnOff()
		}
		if err != nil {
			e.log.Errorw("relay_write_failed", "err", err, "on", on)
			return
		}
	}

	e.mu.Lock()
	e.relayOn = on
	e.mu.Unlock()
	e.deps.Metrics.ObserveRelay(e.system.ID, on)

	if e.loggedOn != nil && *e.loggedOn == on {
		return
	}
	e.loggedOn = &on
	if on {
		e.log.Infow("relay_switched_on", "target", e.target)
		e.record(ctx, models.EventRelayOn, "Relay switched on", nil)
	} else {
		e.log.Infow("relay_switched_off", "target", e.target)
		e.record(ctx, models.EventRelayOff, "Relay switched off", nil)
	}
}

// sensorFailed raises at most one alert per failure episode.
func (e *Engine) sensorFailed(ctx context.Context, cause error) {
	e.deps.Metrics.SensorFailed(e.system.ID)

	var msg string
	e.mu.Lock()
	switch {
	case e.readings == nil && !e.errs.Initial:
		e.errs.Initial = true
		msg = fmt.Sprintf("Heating system %d: unable to reach sensor %s: %v", e.system.ID, e.system.SensorURL, cause)
	case e.readings != nil && !e.errs.Temporary:
		e.errs.Temporary = true
		msg = fmt.Sprintf("Heating system %d: lost contact with sensor %s: %v", e.system.ID, e.system.SensorURL, cause)
	}
	e.mu.Unlock()

	if msg == "" {
		e.log.Debugw("sensor_still_unavailable", "err", cause)
		return
	}
	e.log.Errorw("sensor_unavailable", "err", cause, "sensor_url", e.system.SensorURL)
	e.record(ctx, models.EventSensorError, msg, map[string]any{"sensor_url": e.system.SensorURL})
	e.notify(ctx, msg)
}

// sensorResumed stores the reading and clears any error episode.
func (e *Engine) sensorResumed(ctx context.Context, r models.SensorReadings) {
	e.mu.Lock()
	e.readings = &r
	hadError := e.errs.Initial || e.errs.Temporary
	e.errs = models.ErrorState{}
	e.mu.Unlock()

	if !hadError {
		return
	}
	msg := fmt.Sprintf("Heating system %d: contact with %s resumed", e.system.ID, e.system.SensorURL)
	e.log.Infow("sensor_resumed", "sensor_url", e.system.SensorURL)
	e.record(ctx, models.EventSensorResumed, msg, map[string]any{"sensor_url": e.system.SensorURL})
	e.notify(ctx, msg)
}

// expireAdvance ends an advance whose end time has passed.
func (e *Engine) expireAdvance(ctx context.Context, now time.Time) {
	if e.advance.Active && !now.Before(e.advance.End) {
		e.endAdvance(ctx, "advance_expired", "Advance expired")
	}
}
