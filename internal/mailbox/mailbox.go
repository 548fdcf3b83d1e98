// Package mailbox implements the single-slot request mailbox through which
// groups (and the chef) hand requests to the receptionist and the waiter.
//
// A mailbox holds at most one unread request. The slot doubles as the
// availability permit: a sender blocks while the previous request has not
// been read, which bounds outstanding requests to exactly one per receiver
// system-wide. Receiving a request copies it out and frees the slot in one
// step, so the next sender can post while the receiver is still processing.
package mailbox

import "context"

// Mailbox is a capacity-one rendezvous slot for values of type T.
//
// Exactly one receiver drains the mailbox; any number of senders may
// compete for the slot and are serialized by it.
type Mailbox[T any] struct {
	slot chan T
}

// New creates an empty mailbox.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{slot: make(chan T, 1)}
}

// Post places v into the mailbox, blocking while a previous value is still
// unread. Post must never be called while holding the shared-state lock:
// the receiver does not need the lock to drain the slot, but other actors
// need the lock to make progress toward draining theirs.
//
// The context is only consulted while blocked; a successful post cannot be
// undone.
func (m *Mailbox[T]) Post(ctx context.Context, v T) error {
	select {
	case m.slot <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive blocks until a value is posted, then returns it. Returning frees
// the slot for the next sender.
func (m *Mailbox[T]) Receive(ctx context.Context) (T, error) {
	select {
	case v := <-m.slot:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TryReceive drains a pending value without blocking. It reports whether a
// value was present. Intended for tests inspecting mailbox occupancy.
func (m *Mailbox[T]) TryReceive() (T, bool) {
	select {
	case v := <-m.slot:
		return v, true
	default:
		var zero T
		return zero, false
	}
}
