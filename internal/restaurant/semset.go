package restaurant

import "github.com/dreamware/brigade/internal/sem"

// Semaphores is the fixed semaphore set wired between the actors. It is
// created once per run and shared by reference; the slices are indexed by
// group id or table id, which partitions them so no two groups ever
// contend on the same element.
//
// The per-group and chef-bridge semaphores are binary: their producer can
// never legally get ahead of the consumer, so a second pending signal is a
// protocol violation. The per-table semaphores are counting: a table is
// reused as soon as its bill is settled, so a departing group that has not
// been scheduled yet may still owe a Wait while the table's next occupant
// is already producing signals of its own. Pending signals are bounded by
// the group count, since each group produces at most one signal per
// semaphore over a run.
type Semaphores struct {
	// TableAssigned, one per group: signalled by the receptionist when
	// the group's table is ready, awaited by the group during check-in.
	TableAssigned sem.Group

	// OrderReceived, one per table: signalled by the waiter when it has
	// captured the table's food order, awaited by the ordering group.
	// Decouples request latency from kitchen latency.
	OrderReceived sem.CountingGroup

	// FoodArrived, one per table: signalled by the waiter on delivery,
	// awaited by the group between ordering and eating.
	FoodArrived sem.CountingGroup

	// CheckoutDone, one per table: signalled by the receptionist once the
	// bill is settled, awaited by the departing group. This is the
	// semaphore that actually accumulates in practice: the receptionist
	// can settle the table's next occupant before the previous one has
	// consumed its signal.
	CheckoutDone sem.CountingGroup

	// OrderWaiting wakes the chef after the waiter fills the order slot.
	OrderWaiting *sem.Binary

	// OrderTaken acknowledges, chef to waiter, that the order slot was
	// drained. The waiter blocks on it before serving its next request.
	OrderTaken *sem.Binary
}

// NewSemaphores creates the semaphore set for the given topology, every
// semaphore unsignalled.
func NewSemaphores(groups, tables int) *Semaphores {
	return &Semaphores{
		TableAssigned: sem.NewGroup(groups),
		OrderReceived: sem.NewCountingGroup(tables, groups),
		FoodArrived:   sem.NewCountingGroup(tables, groups),
		CheckoutDone:  sem.NewCountingGroup(tables, groups),
		OrderWaiting:  sem.NewBinary(),
		OrderTaken:    sem.NewBinary(),
	}
}
