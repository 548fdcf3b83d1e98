package actor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dreamware/brigade/internal/restaurant"
)

// seatingPhase is the receptionist's private view of one group's seating.
// It mirrors shared state but lives only here: no other actor may read or
// write it, which is why it needs no lock of its own.
type seatingPhase int

const (
	phaseToArrive seatingPhase = iota
	phaseWaiting
	phaseAtTable
	phaseDone
)

// Receptionist serves table requests and bill requests. It owns the
// table-assignment policy: lowest free table wins, and when a table is
// vacated the lowest-id waiting group is seated at it.
type Receptionist struct {
	env    *Env
	record []seatingPhase
	log    *zap.Logger
}

// NewReceptionist creates the receptionist with every group recorded as
// not yet arrived.
func NewReceptionist(env *Env) *Receptionist {
	return &Receptionist{
		env:    env,
		record: make([]seatingPhase, env.State.GroupCount()),
		log:    env.Log.Named("receptionist"),
	}
}

// Run serves exactly 2×groupCount requests (one table request and one
// bill request per group) and returns.
func (r *Receptionist) Run(ctx context.Context) error {
	total := 2 * r.env.State.GroupCount()
	for served := 0; served < total; served++ {
		req, err := r.nextRequest(ctx)
		if err != nil {
			return fmt.Errorf("receptionist: %w", err)
		}
		switch req.Kind {
		case restaurant.TableRequest:
			err = r.provideTableOrWait(req.Group)
		case restaurant.BillRequest:
			err = r.receivePayment(req.Group)
		default:
			err = fmt.Errorf("unexpected request kind %s", req.Kind)
		}
		if err != nil {
			return fmt.Errorf("receptionist: %w", err)
		}
	}
	r.log.Debug("all requests served", zap.Int("served", total))
	return nil
}

// nextRequest publishes the idle status and blocks on the reception
// mailbox. Receiving frees the slot for the next group before the request
// is processed, so check-in traffic is serialized but never queued deeper
// than one.
func (r *Receptionist) nextRequest(ctx context.Context) (restaurant.Request, error) {
	if err := r.env.State.ReceptionistIdle(); err != nil {
		return restaurant.Request{}, err
	}
	return r.env.Reception.Receive(ctx)
}

// provideTableOrWait seats the group at the lowest free table or queues
// it. A queued group gets no signal: it stays blocked on its table
// semaphore until receivePayment reseats it.
func (r *Receptionist) provideTableOrWait(g int) error {
	if r.record[g] != phaseToArrive {
		return fmt.Errorf("group %d requested a table in phase %d", g, r.record[g])
	}
	table, err := r.env.State.AssignTable(g)
	if err != nil {
		return err
	}
	if table == restaurant.NoTable {
		r.record[g] = phaseWaiting
		r.log.Debug("no table free, group queued", zap.Int("group", g))
		return nil
	}
	r.record[g] = phaseAtTable
	r.log.Debug("table assigned", zap.Int("group", g), zap.Int("table", table))
	return r.env.Sems.TableAssigned[g].Signal()
}

// receivePayment settles the bill, frees the table and, if any group is
// queued, reseats the lowest-id one at the freed table. The departing
// group's checkout-done signal goes out last, after the reseating is
// already visible in shared state.
func (r *Receptionist) receivePayment(g int) error {
	if r.record[g] != phaseAtTable {
		return fmt.Errorf("group %d requested its bill in phase %d", g, r.record[g])
	}
	freed, next, err := r.env.State.SettleBill(g, r.nextWaiting)
	if err != nil {
		return err
	}
	r.record[g] = phaseDone
	if next != restaurant.NoGroup {
		r.record[next] = phaseAtTable
		r.log.Debug("reseating queued group", zap.Int("group", next), zap.Int("table", freed))
		if err := r.env.Sems.TableAssigned[next].Signal(); err != nil {
			return err
		}
	}
	return r.env.Sems.CheckoutDone[freed].Signal()
}

// nextWaiting picks the lowest-id queued group, or NoGroup. It runs under
// the state lock via SettleBill. The scan order is a deterministic
// tie-break by id, not arrival order.
func (r *Receptionist) nextWaiting() int {
	for g, phase := range r.record {
		if phase == phaseWaiting {
			return g
		}
	}
	return restaurant.NoGroup
}
