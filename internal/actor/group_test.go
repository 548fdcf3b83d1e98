package actor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/brigade/internal/journal"
	"github.com/dreamware/brigade/internal/restaurant"
)

// TestGroupLifecycle runs one group actor to completion, with the test
// standing in for the receptionist and the waiter, and then checks the
// persisted status sequence.
func TestGroupLifecycle(t *testing.T) {
	sink := journal.NewMemorySink()
	env := newTestEnv(t, 1, 1, sink)
	ctx := context.Background()

	g := NewGroup(0, env, Delay{}, Delay{}) // no travel, no eating pause
	errc := make(chan error, 1)
	go func() { errc <- g.Run(ctx) }()

	// Reception side: seat the group.
	req, err := env.Reception.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, restaurant.TableRequest, req.Kind)
	assert.Equal(t, 0, req.Group)
	table, err := env.State.AssignTable(0)
	require.NoError(t, err)
	require.Equal(t, 0, table)
	require.NoError(t, env.Sems.TableAssigned[0].Signal())

	// Waiter side: capture the order, then deliver.
	req, err = env.Waiter.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, restaurant.FoodRequest, req.Kind)
	require.NoError(t, env.Sems.OrderReceived[table].Signal())
	require.NoError(t, env.Sems.FoodArrived[table].Signal())

	// Reception side: settle the bill.
	req, err = env.Reception.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, restaurant.BillRequest, req.Kind)
	freed, next, err := env.State.SettleBill(0, nil)
	require.NoError(t, err)
	assert.Equal(t, table, freed)
	assert.Equal(t, restaurant.NoGroup, next)
	require.NoError(t, env.Sems.CheckoutDone[freed].Signal())

	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("group did not complete its lifecycle")
	}

	// The persisted lifecycle, with repeats collapsed, is exactly the
	// protocol order. No WAITING here: the table was free on arrival.
	assert.Equal(t, []restaurant.GroupStatus{
		restaurant.GroupGoing,
		restaurant.GroupAtReception,
		restaurant.GroupFoodRequest,
		restaurant.GroupWaitForFood,
		restaurant.GroupEating,
		restaurant.GroupCheckout,
		restaurant.GroupLeaving,
	}, sink.GroupHistory(0))
}

// TestGroupBlocksUntilSeated verifies that check-in does not return while
// no table has been assigned.
func TestGroupBlocksUntilSeated(t *testing.T) {
	env := newTestEnv(t, 1, 1, nil)
	ctx := context.Background()

	g := NewGroup(0, env, Delay{}, Delay{})
	errc := make(chan error, 1)
	go func() { errc <- g.Run(ctx) }()

	req, err := env.Reception.Receive(ctx)
	require.NoError(t, err)
	require.Equal(t, restaurant.TableRequest, req.Kind)

	// No table assigned yet: the group must stay parked at reception and
	// never reach the ordering phase.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, restaurant.GroupAtReception, env.State.Status(0))
	if _, ok := env.Waiter.TryReceive(); ok {
		t.Fatal("group ordered food before being seated")
	}

	// Seat it and let the rest of the lifecycle run.
	table, err := env.State.AssignTable(0)
	require.NoError(t, err)
	require.NoError(t, env.Sems.TableAssigned[0].Signal())

	req, err = env.Waiter.Receive(ctx)
	require.NoError(t, err)
	require.Equal(t, restaurant.FoodRequest, req.Kind)
	require.NoError(t, env.Sems.OrderReceived[table].Signal())
	require.NoError(t, env.Sems.FoodArrived[table].Signal())

	req, err = env.Reception.Receive(ctx)
	require.NoError(t, err)
	require.Equal(t, restaurant.BillRequest, req.Kind)
	freed, _, err := env.State.SettleBill(0, nil)
	require.NoError(t, err)
	require.NoError(t, env.Sems.CheckoutDone[freed].Signal())

	require.NoError(t, <-errc)
}
