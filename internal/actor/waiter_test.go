package actor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/brigade/internal/restaurant"
)

// TestWaiterRelaysOrderAndDelivers walks the waiter through both halves of
// its job for one group, with the test standing in for the group and the
// chef.
func TestWaiterRelaysOrderAndDelivers(t *testing.T) {
	env := newTestEnv(t, 1, 1, nil)
	_, err := env.State.AssignTable(0) // seat group 0 at table 0
	require.NoError(t, err)

	w := NewWaiter(env)
	ctx := context.Background()
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()

	// Group side: post the food order.
	require.NoError(t, env.Waiter.Post(ctx, restaurant.Request{Kind: restaurant.FoodRequest, Group: 0}))

	// The group is acknowledged before the chef is involved.
	require.NoError(t, env.Sems.OrderReceived[0].Wait(ctx))

	// Chef side: the order slot must be filled and the chef woken.
	require.NoError(t, env.Sems.OrderWaiting.Wait(ctx))
	g, err := env.State.TakeOrder()
	require.NoError(t, err)
	assert.Equal(t, 0, g)
	require.NoError(t, env.Sems.OrderTaken.Signal())

	// Chef side: announce the cooked meal; the waiter must deliver it.
	require.NoError(t, env.Waiter.Post(ctx, restaurant.Request{Kind: restaurant.FoodReady, Group: 0}))
	require.NoError(t, env.Sems.FoodArrived[0].Wait(ctx))

	// 2 × 1 requests served: the loop terminates.
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("waiter did not terminate after serving all requests")
	}
}

// TestWaiterRejectsUnexpectedKind verifies the dispatch guard.
func TestWaiterRejectsUnexpectedKind(t *testing.T) {
	env := newTestEnv(t, 1, 1, nil)
	w := NewWaiter(env)
	ctx := context.Background()

	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()

	require.NoError(t, env.Waiter.Post(ctx, restaurant.Request{Kind: restaurant.BillRequest, Group: 0}))
	err := <-errc
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected request kind")
}
