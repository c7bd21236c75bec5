package booking

import (
	"fmt"
	"math/rand"
	"time"
)

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReference generates a booking reference such as BK1718013337123X7QJ2:
// "BK", the current unix-millisecond timestamp, and a 5-character random
// suffix. The timestamp keeps references sortable and makes collisions
// practically impossible; the unique index on the column catches the rest.
func NewReference() string {
	return fmt.Sprintf("BK%d%s", time.Now().UnixMilli(), randomSuffix(5))
}

// NewVerificationCode generates the 6-digit code printed on the e-ticket.
func NewVerificationCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = referenceAlphabet[rand.Intn(len(referenceAlphabet))]
	}
	return string(b)
}
