package actor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dreamware/brigade/internal/restaurant"
)

// Waiter bridges the groups and the chef: it relays food orders into the
// chef's slot and carries cooked meals back to the tables.
type Waiter struct {
	env *Env
	log *zap.Logger
}

// NewWaiter creates the waiter actor.
func NewWaiter(env *Env) *Waiter {
	return &Waiter{env: env, log: env.Log.Named("waiter")}
}

// Run serves exactly 2×groupCount requests (one food request from each
// group, one food-ready event from the chef per group) and returns.
func (w *Waiter) Run(ctx context.Context) error {
	total := 2 * w.env.State.GroupCount()
	for served := 0; served < total; served++ {
		req, err := w.nextRequest(ctx)
		if err != nil {
			return fmt.Errorf("waiter: %w", err)
		}
		switch req.Kind {
		case restaurant.FoodRequest:
			err = w.informChef(ctx, req.Group)
		case restaurant.FoodReady:
			err = w.takeFoodToTable(req.Group)
		default:
			err = fmt.Errorf("unexpected request kind %s", req.Kind)
		}
		if err != nil {
			return fmt.Errorf("waiter: %w", err)
		}
	}
	w.log.Debug("all requests served", zap.Int("served", total))
	return nil
}

// nextRequest publishes the idle status and blocks on the waiter mailbox.
func (w *Waiter) nextRequest(ctx context.Context) (restaurant.Request, error) {
	if err := w.env.State.WaiterIdle(); err != nil {
		return restaurant.Request{}, err
	}
	return w.env.Waiter.Receive(ctx)
}

// informChef places the group's order in the chef slot, acknowledges the
// group on its table's order-received semaphore, wakes the chef, and
// blocks until the chef confirms it drained the slot. Only then does the
// waiter return to its loop, keeping the slot single-occupancy.
func (w *Waiter) informChef(ctx context.Context, g int) error {
	table, err := w.env.State.BeginChefOrder(g)
	if err != nil {
		return err
	}
	if err := w.env.Sems.OrderReceived[table].Signal(); err != nil {
		return err
	}
	if err := w.env.Sems.OrderWaiting.Signal(); err != nil {
		return err
	}
	if err := w.env.Sems.OrderTaken.Wait(ctx); err != nil {
		return err
	}
	w.log.Debug("order relayed to chef", zap.Int("group", g), zap.Int("table", table))
	return nil
}

// takeFoodToTable delivers the cooked meal: it signals the food-arrived
// semaphore of the group's table, unblocking the group to eat.
func (w *Waiter) takeFoodToTable(g int) error {
	table, err := w.env.State.BeginDelivery(g)
	if err != nil {
		return err
	}
	w.log.Debug("delivering food", zap.Int("group", g), zap.Int("table", table))
	return w.env.Sems.FoodArrived[table].Signal()
}
