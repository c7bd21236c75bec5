package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateScanValid(t *testing.T) {
	b := sampleBooking()
	res := evaluateScan(b, b.VerificationCode)

	assert.True(t, res.Valid)
	assert.Equal(t, ScanOK, res.Reason)
	assert.Equal(t, []string{"L3", "L4"}, res.Seats)
}

func TestEvaluateScanCodeMismatch(t *testing.T) {
	b := sampleBooking()
	res := evaluateScan(b, "000000")

	assert.False(t, res.Valid)
	assert.Equal(t, ScanCodeMismatch, res.Reason)
}

func TestEvaluateScanAlreadyUsed(t *testing.T) {
	b := sampleBooking()
	usedAt := time.Date(2024, 6, 10, 19, 30, 0, 0, time.UTC)
	b.IsVerified = true
	b.VerifiedAt = &usedAt

	res := evaluateScan(b, b.VerificationCode)
	assert.False(t, res.Valid)
	assert.Equal(t, ScanAlreadyUsed, res.Reason)
	assert.Equal(t, &usedAt, res.UsedAt)
}

func TestEvaluateScanRejectsUnconfirmed(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusCancelled, StatusWaitingVerification} {
		b := sampleBooking()
		b.Status = string(status)

		res := evaluateScan(b, b.VerificationCode)
		assert.False(t, res.Valid, status)
		assert.Equal(t, ScanNotFound, res.Reason, status)
	}
}
