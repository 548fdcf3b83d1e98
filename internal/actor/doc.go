// Package actor implements the four threads of control of the restaurant
// simulation: the groups, the receptionist, the waiter, and the chef.
//
// # Overview
//
// Every actor is a plain goroutine with a Run method that executes a fixed
// protocol role to completion and then returns. Actors coordinate only
// through the shared state, the two request mailboxes, and the semaphore
// set in package restaurant; there is no other channel between them.
//
// # Protocol topology
//
//	                TableRequest / BillRequest
//	 Group 0..N-1 ────────────────────────────▶ Receptionist
//	      ▲                                          │
//	      │ TableAssigned[g] / CheckoutDone[t]       │
//	      └──────────────────────────────────────────┘
//
//	                    FoodRequest
//	 Group 0..N-1 ────────────────────▶ Waiter ◀──── FoodReady ── Chef
//	      ▲                               │                        ▲
//	      │ OrderReceived[t]              │ OrderWaiting           │
//	      │ FoodArrived[t]                └────────────────────────┘
//	      └── signalled by waiter            OrderTaken (chef ack)
//
// # Termination
//
// Each group runs one lifecycle and returns. The receptionist and the
// waiter each serve exactly 2×groupCount requests (every group produces
// one table request and one bill request; one food request and one
// food-ready event) and then return. The chef serves groupCount orders.
// No actor is restarted; a failed actor surfaces its error and the run is
// abandoned, never repaired.
//
// # Blocking discipline
//
// Protocol waits have no timeout. The context handed to Run is consulted
// at the actors' blocking points, mailbox operations and semaphore waits
// alike; it exists so a run whose sibling actor failed can be torn down
// completely, never to impose a deadline on a healthy protocol step.
package actor
