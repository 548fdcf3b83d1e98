// Package sim assembles and runs one restaurant simulation: it builds the
// shared state, the semaphore set and the mailboxes, attaches every actor
// to them, and drives all actors to completion.
package sim

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dreamware/brigade/internal/actor"
	"github.com/dreamware/brigade/internal/restaurant"
)

// Option customizes a Simulation at construction time.
type Option func(*options)

type options struct {
	journal restaurant.Journal
	clock   clock.Clock
	log     *zap.Logger
}

// WithJournal directs state snapshots to j. By default snapshots are
// discarded.
func WithJournal(j restaurant.Journal) Option {
	return func(o *options) { o.journal = j }
}

// WithClock substitutes the clock driving the travel/eat/cook pauses.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the root logger actors derive their named loggers from.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// Simulation is one fully wired run: shared state, semaphores, mailboxes
// and actors, ready to execute.
type Simulation struct {
	cfg Config
	env *actor.Env
}

// New validates the configuration and wires a simulation. No goroutine
// starts until Run is called.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	state, err := restaurant.NewState(cfg.Groups, cfg.Tables, o.journal)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	sems := restaurant.NewSemaphores(cfg.Groups, cfg.Tables)
	env := actor.NewEnv(state, sems, o.clock, o.log)
	return &Simulation{cfg: cfg, env: env}, nil
}

// Env exposes the shared environment, mainly so tests can reach the
// mailboxes and semaphores.
func (s *Simulation) Env() *actor.Env { return s.env }

// State exposes the shared state for inspection.
func (s *Simulation) State() *restaurant.State { return s.env.State }

// Run launches the receptionist, the waiter, the chef and one goroutine
// per group, then blocks until every actor finished its protocol role.
//
// The first actor error cancels the context the others observe at their
// blocking points (mailboxes and semaphore waits), so a failed run tears
// down and returns that error instead of hanging on half-finished peers.
// In a healthy run the context is never consulted and every actor
// terminates by completing its fixed number of protocol rounds.
func (s *Simulation) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	receptionist := actor.NewReceptionist(s.env)
	waiter := actor.NewWaiter(s.env)
	chef := actor.NewChef(s.env, s.cfg.Cook.delay())

	eg.Go(func() error { return receptionist.Run(ctx) })
	eg.Go(func() error { return waiter.Run(ctx) })
	eg.Go(func() error { return chef.Run(ctx) })

	for id := 0; id < s.cfg.Groups; id++ {
		grp := actor.NewGroup(id, s.env, s.cfg.Travel.delay(), s.cfg.Eat.delay())
		eg.Go(func() error { return grp.Run(ctx) })
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	return nil
}
