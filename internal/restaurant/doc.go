// Package restaurant defines the shared state at the heart of the
// simulation: the single record every actor reads and mutates, the request
// values exchanged through the mailboxes, and the semaphore set that orders
// the hand-offs between actors.
//
// # Overview
//
// The restaurant is a fixed-topology coordination problem: a known number
// of groups arrive, check in with one receptionist, order food through one
// waiter (who relays orders to one chef), eat, and check out. There are
// fewer tables than there may be groups, so groups can queue. All
// coordination happens through this package's State plus the semaphores in
// Semaphores; there are no other communication channels.
//
// # Architecture
//
//	┌───────────────────────────────────────────────┐
//	│                 SharedState                   │
//	├───────────────────────────────────────────────┤
//	│  groupStatus[]    lifecycle of each group     │
//	│  assignedTable[]  -1 or exclusive table id    │
//	│  groupsWaiting    queued-without-table count  │
//	│  actor statuses   receptionist/waiter/chef    │
//	│  foodOrder slot   pending order for the chef  │
//	├───────────────────────────────────────────────┤
//	│  one mutex guards every field above           │
//	│  every status mutation appends a snapshot     │
//	└───────────────────────────────────────────────┘
//
//	Groups ──TableRequest/BillRequest──▶ receptionist mailbox
//	Groups ──FoodRequest──▶ waiter mailbox ◀──FoodReady── Chef
//
// # Locking discipline
//
// State methods take the mutex, perform one critical section (status
// mutation, snapshot append, reads of dependent fields), and release it
// before returning. Holders never nest the lock and never block on a
// semaphore or mailbox while holding it. Signal semaphores are always
// operated outside the critical section; they carry no state, so their
// ordering relative to the lock only matters for who wakes first, never
// for what the woken actor observes.
//
// # Invariants
//
//   - At most one group holds a given table id in assignedTable at any time.
//   - groupsWaiting equals the number of groups queued with no table
//     whenever the lock is not held.
//   - The persisted status sequence of a group is exactly
//     GOING → AT_RECEPTION → (WAITING →) FOOD_REQUEST → WAIT_FOR_FOOD →
//     EAT → CHECKOUT → LEAVING. WAITING is the one status not written by
//     the owning group: the group is blocked on its table semaphore at
//     that point, so the receptionist records it on the group's behalf.
package restaurant
