package restaurant

// GroupStatus is the lifecycle phase of one group.
type GroupStatus int

const (
	// GroupGoing means the group is travelling to the restaurant.
	GroupGoing GroupStatus = iota
	// GroupAtReception means the group has posted a table request and is
	// blocked until the receptionist seats it.
	GroupAtReception
	// GroupWaiting means the receptionist found no free table and queued
	// the group. The group itself stays blocked on its table semaphore;
	// the receptionist records this phase on its behalf.
	GroupWaiting
	// GroupFoodRequest means the group is posting its food order.
	GroupFoodRequest
	// GroupWaitForFood means the order was taken and the group is blocked
	// until the waiter delivers.
	GroupWaitForFood
	// GroupEating means food arrived and the group is eating.
	GroupEating
	// GroupCheckout means the group has requested its bill.
	GroupCheckout
	// GroupLeaving means the bill is settled and the lifecycle is complete.
	GroupLeaving
)

// String returns the journal-facing name of the status.
func (s GroupStatus) String() string {
	switch s {
	case GroupGoing:
		return "GOING"
	case GroupAtReception:
		return "AT_RECEPTION"
	case GroupWaiting:
		return "WAITING"
	case GroupFoodRequest:
		return "FOOD_REQUEST"
	case GroupWaitForFood:
		return "WAIT_FOR_FOOD"
	case GroupEating:
		return "EAT"
	case GroupCheckout:
		return "CHECKOUT"
	case GroupLeaving:
		return "LEAVING"
	default:
		return "UNKNOWN"
	}
}

// ReceptionistStatus is the receptionist's current phase, recorded for
// observability only; no actor takes decisions based on it.
type ReceptionistStatus int

const (
	ReceptionistWaitForRequest ReceptionistStatus = iota
	ReceptionistAssignTable
	ReceptionistReceivePayment
)

func (s ReceptionistStatus) String() string {
	switch s {
	case ReceptionistWaitForRequest:
		return "WAIT_FOR_REQUEST"
	case ReceptionistAssignTable:
		return "ASSIGN_TABLE"
	case ReceptionistReceivePayment:
		return "RECV_PAY"
	default:
		return "UNKNOWN"
	}
}

// WaiterStatus is the waiter's current phase, observability only.
type WaiterStatus int

const (
	WaiterWaitForRequest WaiterStatus = iota
	WaiterInformChef
	WaiterTakeToTable
)

func (s WaiterStatus) String() string {
	switch s {
	case WaiterWaitForRequest:
		return "WAIT_FOR_REQUEST"
	case WaiterInformChef:
		return "INFORM_CHEF"
	case WaiterTakeToTable:
		return "TAKE_TO_TABLE"
	default:
		return "UNKNOWN"
	}
}

// ChefStatus is the chef's current phase, observability only.
type ChefStatus int

const (
	ChefWaitForOrder ChefStatus = iota
	ChefCooking
)

func (s ChefStatus) String() string {
	switch s {
	case ChefWaitForOrder:
		return "WAIT_FOR_ORDER"
	case ChefCooking:
		return "COOK"
	default:
		return "UNKNOWN"
	}
}

// RequestKind tags a mailbox request. Table and bill requests travel to the
// receptionist; food requests and food-ready events travel to the waiter.
type RequestKind int

const (
	// TableRequest asks the receptionist for a table (check-in).
	TableRequest RequestKind = iota
	// BillRequest asks the receptionist to settle the bill (checkout).
	BillRequest
	// FoodRequest asks the waiter to relay an order to the chef.
	FoodRequest
	// FoodReady tells the waiter a cooked meal is ready for delivery.
	// It is posted by the chef, never by a group.
	FoodReady
)

func (k RequestKind) String() string {
	switch k {
	case TableRequest:
		return "TABLE_REQUEST"
	case BillRequest:
		return "BILL_REQUEST"
	case FoodRequest:
		return "FOOD_REQUEST"
	case FoodReady:
		return "FOOD_READY"
	default:
		return "UNKNOWN"
	}
}

// Request is the value exchanged through the mailboxes: a kind and the
// group it concerns. Requests carry no other payload; everything else is
// read from shared state by the receiver.
type Request struct {
	Kind  RequestKind
	Group int
}

// NoTable marks a group as unseated in the assigned-table slice.
const NoTable = -1

// NoGroup marks the absence of a group id, for example an empty chef slot
// or a bill settlement that reseated nobody.
const NoGroup = -1
