package restaurant

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownGroup is returned when a group id falls outside [0, groupCount).
var ErrUnknownGroup = errors.New("restaurant: unknown group id")

// ErrNoPendingOrder is returned by TakeOrder when the chef is woken with no
// order in the slot, which means the waiter/chef signalling got out of step.
var ErrNoPendingOrder = errors.New("restaurant: no pending food order")

// Journal receives one Snapshot per persisted state transition. Append is
// called while the state lock is held, so implementations must not block
// indefinitely and must never call back into State.
type Journal interface {
	Append(snap Snapshot) error
}

// NopJournal discards every snapshot. Used when no observability sink is
// configured.
type NopJournal struct{}

// Append implements Journal.
func (NopJournal) Append(Snapshot) error { return nil }

// Snapshot is a full copy of the shared state at one transition, tagged
// with a monotonically increasing sequence number.
type Snapshot struct {
	Seq            uint64             `json:"seq"`
	Groups         []GroupStatus      `json:"groups"`
	AssignedTables []int              `json:"assigned_tables"`
	GroupsWaiting  int                `json:"groups_waiting"`
	Receptionist   ReceptionistStatus `json:"receptionist"`
	Waiter         WaiterStatus       `json:"waiter"`
	Chef           ChefStatus         `json:"chef"`
	FoodOrder      bool               `json:"food_order"`
	FoodGroup      int                `json:"food_group"`
}

// State is the single shared record all actors coordinate through.
//
// One mutex guards every field. Each exported method is one critical
// section: it takes the lock, mutates, appends a snapshot where the
// protocol requires one, and releases the lock before returning. Methods
// never signal semaphores and never post to mailboxes; that is the
// caller's job, outside the lock.
type State struct {
	mu      sync.Mutex
	journal Journal

	groups int // number of groups, fixed at creation
	tables int // number of tables, fixed at creation

	groupStatus   []GroupStatus
	assignedTable []int // by group id, NoTable when unseated
	groupsWaiting int   // groups queued with no table

	receptionist ReceptionistStatus
	waiter       WaiterStatus
	chef         ChefStatus

	// Single-slot order hand-off to the chef. foodOrder marks the slot
	// occupied; foodGroup is only meaningful while it is.
	foodOrder bool
	foodGroup int

	seq uint64 // snapshot sequence, incremented under the lock
}

// NewState creates the shared state for the given topology. Every group
// starts travelling (GOING) and unseated. A nil journal discards
// snapshots.
func NewState(groups, tables int, journal Journal) (*State, error) {
	if groups < 1 {
		return nil, fmt.Errorf("restaurant: group count %d, need at least 1", groups)
	}
	if tables < 1 {
		return nil, fmt.Errorf("restaurant: table count %d, need at least 1", tables)
	}
	if journal == nil {
		journal = NopJournal{}
	}
	s := &State{
		journal:       journal,
		groups:        groups,
		tables:        tables,
		groupStatus:   make([]GroupStatus, groups),
		assignedTable: make([]int, groups),
		foodGroup:     NoGroup,
	}
	for g := range s.assignedTable {
		s.assignedTable[g] = NoTable
	}
	// Snapshot zero: the journal starts with everybody travelling, before
	// any actor runs.
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// GroupCount returns the fixed number of groups.
func (s *State) GroupCount() int { return s.groups }

// TableCount returns the fixed number of tables.
func (s *State) TableCount() int { return s.tables }

func (s *State) checkGroup(g int) error {
	if g < 0 || g >= s.groups {
		return fmt.Errorf("%w: %d", ErrUnknownGroup, g)
	}
	return nil
}

// persistLocked appends one snapshot. Callers must hold the lock.
func (s *State) persistLocked() error {
	s.seq++
	if err := s.journal.Append(s.snapshotLocked()); err != nil {
		return fmt.Errorf("restaurant: persist snapshot %d: %w", s.seq, err)
	}
	return nil
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{
		Seq:            s.seq,
		Groups:         make([]GroupStatus, s.groups),
		AssignedTables: make([]int, s.groups),
		GroupsWaiting:  s.groupsWaiting,
		Receptionist:   s.receptionist,
		Waiter:         s.waiter,
		Chef:           s.chef,
		FoodOrder:      s.foodOrder,
		FoodGroup:      s.foodGroup,
	}
	copy(snap.Groups, s.groupStatus)
	copy(snap.AssignedTables, s.assignedTable)
	return snap
}

// freeTableLocked scans tables in ascending id order and returns the first
// one no group holds, or NoTable. Lowest-id-wins is a deliberate
// deterministic tie-break. Callers must hold the lock.
func (s *State) freeTableLocked() int {
	for t := 0; t < s.tables; t++ {
		taken := false
		for g := 0; g < s.groups; g++ {
			if s.assignedTable[g] == t {
				taken = true
				break
			}
		}
		if !taken {
			return t
		}
	}
	return NoTable
}

// CheckIn records that group g reached the reception desk. The caller
// posts the table request and blocks on its table semaphore afterwards.
func (s *State) CheckIn(g int) error {
	if err := s.checkGroup(g); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groupStatus[g] = GroupAtReception
	return s.persistLocked()
}

// BeginFoodOrder records that group g is ordering and returns its table,
// which the caller needs to wait on the table's order-received semaphore.
func (s *State) BeginFoodOrder(g int) (int, error) {
	if err := s.checkGroup(g); err != nil {
		return NoTable, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groupStatus[g] = GroupFoodRequest
	if err := s.persistLocked(); err != nil {
		return NoTable, err
	}
	return s.assignedTable[g], nil
}

// BeginWaitForFood records that group g is waiting for its meal and
// returns its table.
func (s *State) BeginWaitForFood(g int) (int, error) {
	if err := s.checkGroup(g); err != nil {
		return NoTable, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groupStatus[g] = GroupWaitForFood
	if err := s.persistLocked(); err != nil {
		return NoTable, err
	}
	return s.assignedTable[g], nil
}

// BeginEating records that food arrived at group g's table.
func (s *State) BeginEating(g int) error {
	if err := s.checkGroup(g); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groupStatus[g] = GroupEating
	return s.persistLocked()
}

// BeginCheckout records that group g asked for the bill and returns its
// table, which the caller needs to wait on the table's checkout-done
// semaphore.
func (s *State) BeginCheckout(g int) (int, error) {
	if err := s.checkGroup(g); err != nil {
		return NoTable, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groupStatus[g] = GroupCheckout
	if err := s.persistLocked(); err != nil {
		return NoTable, err
	}
	return s.assignedTable[g], nil
}

// Leave records that group g settled its bill and is leaving. Final
// transition of the group lifecycle.
func (s *State) Leave(g int) error {
	if err := s.checkGroup(g); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groupStatus[g] = GroupLeaving
	return s.persistLocked()
}

// ReceptionistIdle records that the receptionist is ready for the next
// request. Called before blocking on the reception mailbox.
func (s *State) ReceptionistIdle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receptionist = ReceptionistWaitForRequest
	return s.persistLocked()
}

// AssignTable seats group g at the lowest free table and returns its id,
// or queues the group and returns NoTable. The snapshot is appended right
// after the receptionist status flips, matching the protocol's persist
// point; the seating or queueing itself becomes visible in the next
// snapshot.
//
// The caller signals the group's table semaphore iff a table was returned;
// a queued group receives no signal and stays blocked.
func (s *State) AssignTable(g int) (int, error) {
	if err := s.checkGroup(g); err != nil {
		return NoTable, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receptionist = ReceptionistAssignTable
	if err := s.persistLocked(); err != nil {
		return NoTable, err
	}
	t := s.freeTableLocked()
	if t == NoTable {
		s.groupsWaiting++
		s.groupStatus[g] = GroupWaiting
		return NoTable, nil
	}
	s.assignedTable[g] = t
	return t, nil
}

// SettleBill releases group g's table and, when groups are queued,
// reassigns the freed table to the group pickNext chooses. pickNext runs
// under the state lock and must return a queued group id or a negative
// value; it exists so the receptionist can consult its private seating
// record without that record ever living in shared state.
//
// Returns the freed table and the reseated group (NoGroup when none).
// The caller signals the reseated group's table semaphore first, then the
// freed table's checkout-done semaphore, both outside the lock.
func (s *State) SettleBill(g int, pickNext func() int) (freed, next int, err error) {
	if err := s.checkGroup(g); err != nil {
		return NoTable, NoGroup, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receptionist = ReceptionistReceivePayment
	if err := s.persistLocked(); err != nil {
		return NoTable, NoGroup, err
	}
	freed = s.assignedTable[g]
	s.assignedTable[g] = NoTable
	next = NoGroup
	if s.groupsWaiting > 0 && pickNext != nil {
		if n := pickNext(); n >= 0 && n < s.groups {
			next = n
			s.assignedTable[next] = freed
			s.groupsWaiting--
		}
	}
	return freed, next, nil
}

// WaiterIdle records that the waiter is ready for the next request.
// Called before blocking on the waiter mailbox.
func (s *State) WaiterIdle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waiter = WaiterWaitForRequest
	return s.persistLocked()
}

// BeginChefOrder places group g's order in the chef slot and returns the
// group's table. The caller acknowledges the group on the table's
// order-received semaphore and wakes the chef, both outside the lock.
func (s *State) BeginChefOrder(g int) (int, error) {
	if err := s.checkGroup(g); err != nil {
		return NoTable, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waiter = WaiterInformChef
	if err := s.persistLocked(); err != nil {
		return NoTable, err
	}
	s.foodOrder = true
	s.foodGroup = g
	return s.assignedTable[g], nil
}

// BeginDelivery records that the waiter is carrying group g's meal and
// returns the group's table, whose food-arrived semaphore the caller
// signals.
func (s *State) BeginDelivery(g int) (int, error) {
	if err := s.checkGroup(g); err != nil {
		return NoTable, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waiter = WaiterTakeToTable
	if err := s.persistLocked(); err != nil {
		return NoTable, err
	}
	return s.assignedTable[g], nil
}

// ChefIdle records that the chef is ready for the next order. Called
// before blocking on the order-waiting semaphore.
func (s *State) ChefIdle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chef = ChefWaitForOrder
	return s.persistLocked()
}

// TakeOrder drains the chef slot and returns the ordering group. Waking
// the chef with an empty slot means the order-waiting semaphore fired
// without a preceding BeginChefOrder, which is fatal to the run.
func (s *State) TakeOrder() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.foodOrder {
		return NoGroup, ErrNoPendingOrder
	}
	s.chef = ChefCooking
	if err := s.persistLocked(); err != nil {
		return NoGroup, err
	}
	s.foodOrder = false
	g := s.foodGroup
	s.foodGroup = NoGroup
	return g, nil
}

// Status returns group g's current lifecycle phase.
func (s *State) Status(g int) GroupStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groupStatus[g]
}

// Table returns group g's assigned table, NoTable when unseated.
func (s *State) Table(g int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assignedTable[g]
}

// GroupsWaiting returns the number of groups queued without a table.
func (s *State) GroupsWaiting() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groupsWaiting
}

// Snapshot returns a copy of the current state without appending to the
// journal or advancing the sequence.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}
