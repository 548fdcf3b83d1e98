package actor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/dreamware/brigade/internal/restaurant"
)

// Every test in this package spawns actor goroutines; none may outlive its
// test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestEnv wires a fresh environment for the given topology. Snapshots
// go to sink, which may be nil.
func newTestEnv(t *testing.T, groups, tables int, sink restaurant.Journal) *Env {
	t.Helper()
	state, err := restaurant.NewState(groups, tables, sink)
	require.NoError(t, err)
	sems := restaurant.NewSemaphores(groups, tables)
	return NewEnv(state, sems, nil, zaptest.NewLogger(t))
}
