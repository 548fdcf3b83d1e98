// Package journal persists the state snapshots the protocol emits at every
// transition, giving each run an observable, replayable history.
//
// Two sinks are provided: MemorySink for tests and in-process inspection,
// and BoltSink for a durable on-disk journal. Both are safe for the
// single-writer/concurrent-reader pattern the simulation uses, and both
// honor the Journal contract: Append runs while the state lock is held,
// so it must be quick and must never call back into the state.
package journal

import (
	"sync"

	"github.com/dreamware/brigade/internal/restaurant"
)

// MemorySink records snapshots in append order, in memory.
type MemorySink struct {
	mu    sync.Mutex
	snaps []restaurant.Snapshot
}

// NewMemorySink creates an empty in-memory journal.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Append implements restaurant.Journal.
func (m *MemorySink) Append(snap restaurant.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps = append(m.snaps, snap)
	return nil
}

// Len returns the number of recorded snapshots.
func (m *MemorySink) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snaps)
}

// Snapshots returns a copy of the recorded history in append order.
func (m *MemorySink) Snapshots() []restaurant.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]restaurant.Snapshot, len(m.snaps))
	copy(out, m.snaps)
	return out
}

// GroupHistory returns the deduplicated sequence of statuses group g moved
// through, in journal order. Consecutive snapshots where the group's
// status did not change collapse into one entry, so the result reads as
// the group's lifecycle: GOING, AT_RECEPTION, ... LEAVING.
func (m *MemorySink) GroupHistory(g int) []restaurant.GroupStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	var hist []restaurant.GroupStatus
	for _, snap := range m.snaps {
		if g < 0 || g >= len(snap.Groups) {
			continue
		}
		st := snap.Groups[g]
		if len(hist) == 0 || hist[len(hist)-1] != st {
			hist = append(hist, st)
		}
	}
	return hist
}
