package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/brigade/internal/restaurant"
)

func snap(seq uint64, statuses ...restaurant.GroupStatus) restaurant.Snapshot {
	tables := make([]int, len(statuses))
	for i := range tables {
		tables[i] = restaurant.NoTable
	}
	return restaurant.Snapshot{
		Seq:            seq,
		Groups:         statuses,
		AssignedTables: tables,
		FoodGroup:      restaurant.NoGroup,
	}
}

func TestMemorySink(t *testing.T) {
	t.Run("records in order", func(t *testing.T) {
		m := NewMemorySink()
		require.NoError(t, m.Append(snap(1, restaurant.GroupGoing)))
		require.NoError(t, m.Append(snap(2, restaurant.GroupAtReception)))

		assert.Equal(t, 2, m.Len())
		snaps := m.Snapshots()
		require.Len(t, snaps, 2)
		assert.Equal(t, uint64(1), snaps[0].Seq)
		assert.Equal(t, uint64(2), snaps[1].Seq)
	})

	t.Run("snapshots returns a copy", func(t *testing.T) {
		m := NewMemorySink()
		require.NoError(t, m.Append(snap(1, restaurant.GroupGoing)))

		snaps := m.Snapshots()
		snaps[0].Seq = 99
		assert.Equal(t, uint64(1), m.Snapshots()[0].Seq)
	})

	t.Run("group history collapses repeats", func(t *testing.T) {
		m := NewMemorySink()
		// The group holds each phase across several snapshots while other
		// actors persist their own transitions.
		require.NoError(t, m.Append(snap(1, restaurant.GroupGoing)))
		require.NoError(t, m.Append(snap(2, restaurant.GroupGoing)))
		require.NoError(t, m.Append(snap(3, restaurant.GroupAtReception)))
		require.NoError(t, m.Append(snap(4, restaurant.GroupAtReception)))
		require.NoError(t, m.Append(snap(5, restaurant.GroupFoodRequest)))

		assert.Equal(t, []restaurant.GroupStatus{
			restaurant.GroupGoing,
			restaurant.GroupAtReception,
			restaurant.GroupFoodRequest,
		}, m.GroupHistory(0))
	})

	t.Run("history of unknown group is empty", func(t *testing.T) {
		m := NewMemorySink()
		require.NoError(t, m.Append(snap(1, restaurant.GroupGoing)))
		assert.Empty(t, m.GroupHistory(5))
	})
}

func TestBoltSink(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.db")
		s, err := OpenBolt(path)
		require.NoError(t, err)
		defer s.Close()

		want := []restaurant.Snapshot{
			snap(1, restaurant.GroupGoing, restaurant.GroupGoing),
			snap(2, restaurant.GroupAtReception, restaurant.GroupGoing),
			snap(3, restaurant.GroupAtReception, restaurant.GroupAtReception),
		}
		for _, sn := range want {
			require.NoError(t, s.Append(sn))
		}

		got, err := s.Snapshots(s.RunID())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("runs are isolated", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.db")

		first, err := OpenBolt(path)
		require.NoError(t, err)
		require.NoError(t, first.Append(snap(1, restaurant.GroupGoing)))
		firstRun := first.RunID()
		require.NoError(t, first.Close())

		second, err := OpenBolt(path)
		require.NoError(t, err)
		defer second.Close()
		require.NoError(t, second.Append(snap(1, restaurant.GroupLeaving)))

		runs, err := second.Runs()
		require.NoError(t, err)
		assert.Len(t, runs, 2)

		old, err := second.Snapshots(firstRun)
		require.NoError(t, err)
		require.Len(t, old, 1)
		assert.Equal(t, restaurant.GroupGoing, old[0].Groups[0])
	})

	t.Run("unknown run", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.db")
		s, err := OpenBolt(path)
		require.NoError(t, err)
		defer s.Close()

		_, err = s.Snapshots("no-such-run")
		assert.ErrorIs(t, err, ErrRunNotFound)
	})
}
