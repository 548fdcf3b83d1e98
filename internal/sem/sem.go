// Package sem provides the signal semaphores used by the restaurant protocol.
//
// Every semaphore here is a wake-up primitive between exactly one producer
// and one consumer per protocol round: the receptionist waking a group whose
// table is ready, the waiter acknowledging a food order, the chef announcing
// a cooked meal. None of them carry data; the payload always travels through
// shared state or a mailbox, the semaphore only orders the hand-off.
//
// Two flavors exist. Binary holds at most one pending signal and treats a
// second signal as a protocol violation; it fits rendezvous points where the
// producer cannot legally get ahead of the consumer. Counting accumulates
// pending signals up to a fixed bound; it fits the per-table semaphores,
// where a departing group may still be unscheduled while its table is
// already serving the next group.
package sem

import (
	"context"
	"errors"
)

// ErrAlreadySignalled is returned by Binary.Signal when a second signal
// arrives before the waiter consumed the first one. The protocol pairs every
// Signal with exactly one Wait, so hitting this error means the pairing is
// broken and the caller must treat the run as corrupt.
var ErrAlreadySignalled = errors.New("sem: binary semaphore already signalled")

// ErrOverflow is returned by Counting.Signal when the pending-signal bound
// is exceeded. The bound is sized so that a correct run can never hit it.
var ErrOverflow = errors.New("sem: semaphore capacity exceeded")

// Binary is a binary semaphore with an initial value of zero.
//
// It is backed by a one-slot channel: Signal deposits the single token,
// Wait consumes it. A Wait that arrives before the matching Signal blocks,
// which is exactly the suspension the protocol relies on; a Wait that
// arrives after the Signal returns immediately, so the classic lost-wake-up
// race between "check condition" and "go to sleep" cannot occur.
type Binary struct {
	token chan struct{}
}

// NewBinary creates a binary semaphore with no pending signal.
func NewBinary() *Binary {
	return &Binary{token: make(chan struct{}, 1)}
}

// Signal makes the semaphore available, waking the waiter if it is already
// blocked. Signalling an already-signalled semaphore is a protocol
// violation and is reported instead of silently blocking the producer.
func (b *Binary) Signal() error {
	select {
	case b.token <- struct{}{}:
		return nil
	default:
		return ErrAlreadySignalled
	}
}

// Wait blocks until the semaphore is signalled and consumes the signal.
// There is no timeout; the context exists so a run whose sibling actor
// failed can be torn down, and is never triggered in a healthy run.
func (b *Binary) Wait(ctx context.Context) error {
	select {
	case <-b.token:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryWait consumes a pending signal without blocking. It reports whether a
// signal was consumed. Used by tests to assert that a semaphore was (or was
// not) signalled at a given point.
func (b *Binary) TryWait() bool {
	select {
	case <-b.token:
		return true
	default:
		return false
	}
}

// Counting is a semaphore whose pending signals accumulate, up to a fixed
// bound. Each Signal deposits one token and each Wait consumes exactly one,
// so signals are never lost or merged even when the consumers lag far
// behind the producer.
type Counting struct {
	tokens chan struct{}
}

// NewCounting creates a counting semaphore with no pending signal and the
// given bound on pending signals.
func NewCounting(capacity int) *Counting {
	return &Counting{tokens: make(chan struct{}, capacity)}
}

// Signal deposits one token, waking one waiter if any is blocked.
// Exceeding the pending-signal bound is reported, not blocked on; a
// correctly sized semaphore never overflows.
func (c *Counting) Signal() error {
	select {
	case c.tokens <- struct{}{}:
		return nil
	default:
		return ErrOverflow
	}
}

// Wait blocks until a token is available and consumes it. As with
// Binary.Wait, the context is a teardown path, not a timeout.
func (c *Counting) Wait(ctx context.Context) error {
	select {
	case <-c.tokens:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryWait consumes one pending token without blocking and reports whether
// it did.
func (c *Counting) TryWait() bool {
	select {
	case <-c.tokens:
		return true
	default:
		return false
	}
}

// Group bundles one Binary per element, indexed by group or table id.
// Ids partition the semaphores, so two distinct groups never contend on
// the same element.
type Group []*Binary

// NewGroup creates n independent binary semaphores.
func NewGroup(n int) Group {
	g := make(Group, n)
	for i := range g {
		g[i] = NewBinary()
	}
	return g
}

// CountingGroup bundles one Counting per element, indexed by table id.
type CountingGroup []*Counting

// NewCountingGroup creates n independent counting semaphores, each with the
// given pending-signal bound.
func NewCountingGroup(n, capacity int) CountingGroup {
	g := make(CountingGroup, n)
	for i := range g {
		g[i] = NewCounting(capacity)
	}
	return g
}
