package booking

// Status is the lifecycle state stored in bookings.status.
type Status string

const (
	StatusPending             Status = "pending"
	StatusConfirmed           Status = "confirmed"
	StatusCancelled           Status = "cancelled"
	StatusWaitingVerification Status = "waiting_verification"
)

const (
	OrderTypeRegular = "regular"
	OrderTypeBundle  = "bundle"
)

// transitions is the full transition table. confirmed and cancelled are
// terminal; waiting_verification is the bundle-order intermediate state
// between payment submission and back-office verification.
var transitions = map[Status][]Status{
	StatusPending:             {StatusConfirmed, StatusCancelled, StatusWaitingVerification},
	StatusWaitingVerification: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:           {},
	StatusCancelled:           {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) Terminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransition reports whether the state machine allows from → to.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
