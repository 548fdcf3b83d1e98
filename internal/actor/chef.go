package actor

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dreamware/brigade/internal/restaurant"
)

// Chef cooks one meal per group. It consumes the order slot the waiter
// fills, acknowledges it, cooks, and posts a food-ready event back into
// the waiter mailbox.
//
// Deliveries are decoupled from order intake: the posting of a cooked
// meal can block while the waiter mailbox holds another group's order,
// and the waiter cannot drain that order until the chef acknowledges it.
// Taking orders in the main loop and posting meals from delivery
// goroutines keeps the acknowledgement always available and breaks that
// cycle.
type Chef struct {
	env  *Env
	cook Delay
	log  *zap.Logger
}

// NewChef creates the chef actor with its cooking delay.
func NewChef(env *Env, cook Delay) *Chef {
	return &Chef{env: env, cook: cook, log: env.Log.Named("chef")}
}

// Run cooks exactly groupCount orders, waits for every meal to be handed
// to the waiter, and returns.
func (c *Chef) Run(ctx context.Context) error {
	var deliveries errgroup.Group
	orders := c.env.State.GroupCount()
	for cooked := 0; cooked < orders; cooked++ {
		if err := c.env.State.ChefIdle(); err != nil {
			return fmt.Errorf("chef: %w", err)
		}
		if err := c.env.Sems.OrderWaiting.Wait(ctx); err != nil {
			return fmt.Errorf("chef: %w", err)
		}

		g, err := c.env.State.TakeOrder()
		if err != nil {
			return fmt.Errorf("chef: %w", err)
		}
		if err := c.env.Sems.OrderTaken.Signal(); err != nil {
			return fmt.Errorf("chef: %w", err)
		}

		c.cook.Sleep(c.env.Clock)

		c.log.Debug("meal ready", zap.Int("group", g))
		deliveries.Go(func() error {
			req := restaurant.Request{Kind: restaurant.FoodReady, Group: g}
			return c.env.Waiter.Post(ctx, req)
		})
	}
	if err := deliveries.Wait(); err != nil {
		return fmt.Errorf("chef: deliver: %w", err)
	}
	return nil
}
