// Package alert delivers operator notifications. Delivery is best-effort:
// a failing sink never affects control logic.
package alert

import (
	"context"
	"errors"
	"sync"
	"time"

	"controlling_heating/internal/logger"
)

// Sink delivers a single human-readable message.
type Sink interface {
	Notify(ctx context.Context, msg string) error
}

// Sinks fans a message out to every sink.
type Sinks []Sink

func (s Sinks) Notify(ctx context.Context, msg string) error {
	var errs []error
	for _, sink := range s {
		if err := sink.Notify(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Log writes alerts to the service log.
type Log struct {
	Logger *logger.Logger
}

func (l Log) Notify(_ context.Context, msg string) error {
	l.Logger.Warnw("alert", "message", msg)
	return nil
}

// defaultAsyncTimeout bounds a single background delivery.
const defaultAsyncTimeout = 10 * time.Second

// Async delivers in the background so callers never block on a slow sink.
type Async struct {
	sink    Sink
	log     *logger.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewAsync wraps sink. Delivery errors are logged.
func NewAsync(sink Sink, log *logger.Logger) *Async {
	return &Async{sink: sink, log: log, timeout: defaultAsyncTimeout}
}

// Notify schedules delivery and returns immediately.
func (a *Async) Notify(ctx context.Context, msg string) error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
		defer cancel()
		if err := a.sink.Notify(ctx, msg); err != nil && a.log != nil {
			a.log.Errorw("alert_delivery_failed", "err", err, "message", msg)
		}
	}()
	return nil
}

// Wait blocks until all scheduled deliveries have finished.
func (a *Async) Wait() {
	a.wg.Wait()
}
