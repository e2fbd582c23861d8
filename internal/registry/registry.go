// Package registry owns the running thermostat engines, independent of any
// request lifetime.
package registry

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"controlling_heating/internal/engine"
	"controlling_heating/internal/logger"
	"controlling_heating/internal/models"
)

var (
	// ErrNotFound is returned when no engine is running for a system.
	ErrNotFound = errors.New("heating system is not running")
	// ErrUnauthorized is returned when a system belongs to another household.
	ErrUnauthorized = errors.New("heating system belongs to another household")
)

// SystemStore is the persisted device metadata the registry keeps in sync.
type SystemStore interface {
	Get(ctx context.Context, id int) (models.HeatingSystem, error)
	ListActivated(ctx context.Context) ([]models.HeatingSystem, error)
	SetActivated(ctx context.Context, id int, activated bool) error
}

// Factory builds an engine for a system. It is called with the registry lock
// held and must not block on the network.
type Factory func(sys models.HeatingSystem) (*engine.Engine, error)

type entry struct {
	eng    *engine.Engine
	cancel context.CancelFunc
}

// Registry maps system ids to their running engines. At most one engine per
// id controls the relay at any time.
type Registry struct {
	mu      sync.RWMutex
	running map[int]entry

	// stopping holds cancelled engines whose loop has not returned yet.
	stopping map[int]*engine.Engine

	factory Factory
	systems SystemStore
	log     *logger.Logger

	base context.Context
	stop context.CancelFunc
}

// New returns an empty registry. Engines are built by factory and their
// activation flags are kept in systems.
func New(factory Factory, systems SystemStore, log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	base, stop := context.WithCancel(context.Background())
	return &Registry{
		running:  make(map[int]entry),
		stopping: make(map[int]*engine.Engine),
		factory:  factory,
		systems:  systems,
		log:      log,
		base:     base,
		stop:     stop,
	}
}

// Start launches the engine for systemID unless one is already running, and
// marks the system activated so it is restored after a restart.
func (r *Registry) Start(ctx context.Context, systemID int) (*engine.Engine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.running[systemID]; ok {
		return e.eng, nil
	}
	sys, err := r.systems.Get(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("load heating system %d: %w", systemID, err)
	}
	return r.launch(ctx, sys)
}

// launch must be called with r.mu held.
func (r *Registry) launch(ctx context.Context, sys models.HeatingSystem) (*engine.Engine, error) {
	// the previous engine still owns the relay line until its loop returns
	if old, ok := r.stopping[sys.ID]; ok {
		select {
		case <-old.Done():
		case <-ctx.Done():
			return nil, fmt.Errorf("wait for system %d to stop: %w", sys.ID, ctx.Err())
		}
		delete(r.stopping, sys.ID)
	}
	eng, err := r.factory(sys)
	if err != nil {
		return nil, fmt.Errorf("build engine for system %d: %w", sys.ID, err)
	}
	if !sys.Activated {
		if err := r.systems.SetActivated(ctx, sys.ID, true); err != nil {
			r.log.Errorw("set_activated_failed", "system_id", sys.ID, "err", err)
		}
	}
	runCtx, cancel := context.WithCancel(r.base)
	r.running[sys.ID] = entry{eng: eng, cancel: cancel}
	go eng.Run(runCtx)

	r.log.Infow("system_started", "system_id", sys.ID, "household_id", sys.HouseholdID)
	return eng, nil
}

// Stop removes the engine and marks the system inactive. The engine loop is
// cancelled but Stop does not wait for it to exit; a later Start of the same
// system does.
func (r *Registry) Stop(ctx context.Context, systemID int) error {
	r.mu.Lock()
	e, ok := r.running[systemID]
	if ok {
		delete(r.running, systemID)
		r.stopping[systemID] = e.eng
	}
	r.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	e.cancel()
	go r.forget(systemID, e.eng)
	if err := r.systems.SetActivated(ctx, systemID, false); err != nil {
		return fmt.Errorf("mark system %d inactive: %w", systemID, err)
	}
	r.log.Infow("system_stopped", "system_id", systemID)
	return nil
}

// forget drops eng from the stopping set once its loop has returned.
func (r *Registry) forget(systemID int, eng *engine.Engine) {
	<-eng.Done()
	r.mu.Lock()
	if r.stopping[systemID] == eng {
		delete(r.stopping, systemID)
	}
	r.mu.Unlock()
}

// Get returns the running engine of systemID if it belongs to householdID.
func (r *Registry) Get(systemID, householdID int) (*engine.Engine, error) {
	r.mu.RLock()
	e, ok := r.running[systemID]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if e.eng.HouseholdID() != householdID {
		return nil, ErrUnauthorized
	}
	return e.eng, nil
}

// ForHousehold returns the running engines of a household ordered by id.
func (r *Registry) ForHousehold(householdID int) []*engine.Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*engine.Engine
	for _, e := range r.running {
		if e.eng.HouseholdID() == householdID {
			out = append(out, e.eng)
		}
	}
	slices.SortFunc(out, func(a, b *engine.Engine) int { return a.ID() - b.ID() })
	return out
}

// IDs yields the ids of running systems in ascending order. The set is
// captured when iteration begins.
func (r *Registry) IDs() iter.Seq[int] {
	return func(yield func(int) bool) {
		r.mu.RLock()
		ids := make([]int, 0, len(r.running))
		for id := range r.running {
			ids = append(ids, id)
		}
		r.mu.RUnlock()

		slices.Sort(ids)
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

// RestoreActivated starts every system that was running at last shutdown.
func (r *Registry) RestoreActivated(ctx context.Context) error {
	systems, err := r.systems.ListActivated(ctx)
	if err != nil {
		return fmt.Errorf("list activated systems: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, sys := range systems {
		if _, ok := r.running[sys.ID]; ok {
			continue
		}
		if _, err := r.launch(ctx, sys); err != nil {
			r.log.Errorw("restore_system_failed", "system_id", sys.ID, "err", err)
			errs = append(errs, err)
		}
	}
	r.log.Infow("systems_restored", "count", len(r.running))
	return errors.Join(errs...)
}

// StopAll cancels every engine and waits for the loops to exit. Activation
// flags are left untouched so the same systems come back on the next boot.
func (r *Registry) StopAll() {
	r.mu.Lock()
	engines := make([]*engine.Engine, 0, len(r.running)+len(r.stopping))
	for id, e := range r.running {
		engines = append(engines, e.eng)
		delete(r.running, id)
	}
	for _, eng := range r.stopping {
		engines = append(engines, eng)
	}
	r.mu.Unlock()

	r.stop()
	for _, eng := range engines {
		<-eng.Done()
	}
	r.log.Infow("all_systems_stopped", "count", len(engines))
}
