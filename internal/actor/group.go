package actor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dreamware/brigade/internal/restaurant"
)

// Group drives one dining group through its lifecycle:
// travel → check-in → order → wait for food → eat → checkout.
// Run is called exactly once; there is no re-entry.
type Group struct {
	id     int
	env    *Env
	travel Delay
	dine   Delay
	log    *zap.Logger
}

// NewGroup creates the actor for group id with its travel and eating
// delays.
func NewGroup(id int, env *Env, travel, dine Delay) *Group {
	return &Group{
		id:     id,
		env:    env,
		travel: travel,
		dine:   dine,
		log:    env.Log.Named(fmt.Sprintf("group-%d", id)),
	}
}

// Run executes the full lifecycle and returns once the bill is settled.
func (g *Group) Run(ctx context.Context) error {
	g.travel.Sleep(g.env.Clock)

	if err := g.checkIn(ctx); err != nil {
		return fmt.Errorf("group %d: check in: %w", g.id, err)
	}
	if err := g.orderFood(ctx); err != nil {
		return fmt.Errorf("group %d: order food: %w", g.id, err)
	}
	if err := g.waitFood(ctx); err != nil {
		return fmt.Errorf("group %d: wait for food: %w", g.id, err)
	}

	g.dine.Sleep(g.env.Clock)

	if err := g.checkOut(ctx); err != nil {
		return fmt.Errorf("group %d: check out: %w", g.id, err)
	}
	g.log.Debug("left the restaurant")
	return nil
}

// checkIn announces the group at reception and blocks until the
// receptionist assigns a table. This wait is unbounded: with every table
// taken, the group stays parked here until a seated group checks out.
func (g *Group) checkIn(ctx context.Context) error {
	if err := g.env.State.CheckIn(g.id); err != nil {
		return err
	}
	g.log.Debug("requesting table")
	req := restaurant.Request{Kind: restaurant.TableRequest, Group: g.id}
	if err := g.env.Reception.Post(ctx, req); err != nil {
		return err
	}
	if err := g.env.Sems.TableAssigned[g.id].Wait(ctx); err != nil {
		return err
	}
	g.log.Debug("seated", zap.Int("table", g.env.State.Table(g.id)))
	return nil
}

// orderFood posts the food request and blocks until the waiter has
// captured it. The wait is on the table's order-received semaphore, not
// on the kitchen, so request latency stays decoupled from cooking time.
func (g *Group) orderFood(ctx context.Context) error {
	table, err := g.env.State.BeginFoodOrder(g.id)
	if err != nil {
		return err
	}
	req := restaurant.Request{Kind: restaurant.FoodRequest, Group: g.id}
	if err := g.env.Waiter.Post(ctx, req); err != nil {
		return err
	}
	return g.env.Sems.OrderReceived[table].Wait(ctx)
}

// waitFood blocks until the waiter delivers to the group's table, then
// records that the meal started.
func (g *Group) waitFood(ctx context.Context) error {
	table, err := g.env.State.BeginWaitForFood(g.id)
	if err != nil {
		return err
	}
	if err := g.env.Sems.FoodArrived[table].Wait(ctx); err != nil {
		return err
	}
	return g.env.State.BeginEating(g.id)
}

// checkOut requests the bill, blocks until the receptionist settles it,
// and records the group leaving.
func (g *Group) checkOut(ctx context.Context) error {
	table, err := g.env.State.BeginCheckout(g.id)
	if err != nil {
		return err
	}
	req := restaurant.Request{Kind: restaurant.BillRequest, Group: g.id}
	if err := g.env.Reception.Post(ctx, req); err != nil {
		return err
	}
	if err := g.env.Sems.CheckoutDone[table].Wait(ctx); err != nil {
		return err
	}
	return g.env.State.Leave(g.id)
}
