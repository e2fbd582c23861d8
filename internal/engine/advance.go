package engine

import (
	"context"
	"time"

	"controlling_heating/internal/models"
)

// StartAdvance overrides the schedule for d and returns the end time. While
// active the engine heats to the advance target unless a schedule period
// begins, which ends the advance. Starting an advance that is already active
// is a no-op returning the existing end time.
func (e *Engine) StartAdvance(ctx context.Context, d time.Duration) (time.Time, error) {
	var end time.Time
	err := e.do(ctx, func(ctx context.Context) {
		if e.advance.Active {
			e.log.Infow("advance_already_active", "end", e.advance.End)
			end = e.advance.End
			return
		}
		now := e.now()
		end = now.Add(d)

		e.mu.Lock()
		e.advance = models.AdvanceState{Active: true, Start: now, End: end}
		e.mu.Unlock()
		e.advanceGen++
		gen := e.advanceGen

		e.log.Infow("advance_started", "end", end, "duration", d.String())
		e.deps.Metrics.ObserveAdvance(e.system.ID, true)
		e.record(ctx, models.EventAdvanceStart, "Advance started", map[string]any{
			"start": now, "end": end,
		})

		e.tick(ctx)
		if e.advance.Active {
			go e.advanceLoop(ctx, gen)
		}
	})
	if err != nil {
		return time.Time{}, err
	}
	return end, nil
}

// CancelAdvance ends an active advance and ticks immediately so the relay
// reflects the schedule again.
func (e *Engine) CancelAdvance(ctx context.Context) error {
	return e.do(ctx, func(ctx context.Context) {
		if e.advance.Active {
			e.endAdvance(ctx, "advance_cancelled", "Advance cancelled")
		}
		e.tick(ctx)
	})
}

// advanceLoop forces a control pass every AdvanceInterval until the advance
// identified by gen is no longer active. It never touches state directly.
func (e *Engine) advanceLoop(ctx context.Context, gen int) {
	t := time.NewTicker(e.params.AdvanceInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		keep := false
		err := e.do(ctx, func(ctx context.Context) {
			if !e.advanceCurrent(gen) {
				return
			}
			e.tick(ctx)
			keep = e.advanceCurrent(gen)
		})
		if err != nil || !keep {
			return
		}
	}
}

func (e *Engine) advanceCurrent(gen int) bool {
	return e.advance.Active && e.advanceGen == gen
}

func (e *Engine) endAdvance(ctx context.Context, event, desc string) {
	e.mu.Lock()
	e.advance = models.AdvanceState{}
	e.mu.Unlock()
	e.log.Infow(event)
	e.deps.Metrics.ObserveAdvance(e.system.ID, false)
	e.record(ctx, models.EventAdvanceStop, desc, map[string]any{"reason": event})
}
