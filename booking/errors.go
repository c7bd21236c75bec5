package booking

import (
	"errors"
	"fmt"
)

// Sentinel errors let handlers map store failures onto HTTP statuses without
// inspecting error strings.
var (
	ErrNotFound           = errors.New("booking not found")
	ErrAlreadyConfirmed   = errors.New("booking already confirmed")
	ErrInvalidState       = errors.New("booking state does not allow this transition")
	ErrDuplicateReference = errors.New("booking reference already exists")
)

// ValidationError marks caller mistakes: malformed or missing input that no
// retry will fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err (or anything it wraps) is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SeatConflictError is returned by ConfirmPayment when one of the booking's
// seats is already held by another confirmed booking of the same showtime.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats already booked: %s", JoinSeats(e.Seats))
}
