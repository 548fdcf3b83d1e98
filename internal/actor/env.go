package actor

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/dreamware/brigade/internal/mailbox"
	"github.com/dreamware/brigade/internal/restaurant"
)

// Env is the shared environment an actor attaches to at startup: the state
// record, the semaphore set, and the two request mailboxes. One Env is
// created per run and handed by reference to every actor.
type Env struct {
	// State is the single shared record all actors read and mutate.
	State *restaurant.State

	// Sems is the semaphore set ordering the actor hand-offs.
	Sems *restaurant.Semaphores

	// Reception carries TableRequest and BillRequest values from groups
	// to the receptionist, one at a time.
	Reception *mailbox.Mailbox[restaurant.Request]

	// Waiter carries FoodRequest values from groups and FoodReady events
	// from the chef to the waiter, one at a time.
	Waiter *mailbox.Mailbox[restaurant.Request]

	// Clock drives the travel, eating and cooking pauses. Injectable so
	// tests control time.
	Clock clock.Clock

	// Log is the root logger; each actor derives a named child from it.
	Log *zap.Logger
}

// NewEnv assembles the environment for one run. A nil clk falls back to
// the wall clock and a nil log discards output.
func NewEnv(state *restaurant.State, sems *restaurant.Semaphores, clk clock.Clock, log *zap.Logger) *Env {
	if clk == nil {
		clk = clock.New()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Env{
		State:     state,
		Sems:      sems,
		Reception: mailbox.New[restaurant.Request](),
		Waiter:    mailbox.New[restaurant.Request](),
		Clock:     clk,
		Log:       log,
	}
}
