package booking

import (
	"errors"
	"time"

	"bioskop_tiket/broadcast"
	"bioskop_tiket/model"

	"gorm.io/gorm"
)

// ScanReason explains why a scan was rejected. An invalid scan is an expected
// outcome at the gate, not an error, so these travel in the result instead of
// the error return.
type ScanReason string

const (
	ScanOK           ScanReason = "ok"
	ScanNotFound     ScanReason = "not_found"
	ScanCodeMismatch ScanReason = "code_mismatch"
	ScanAlreadyUsed  ScanReason = "already_used"
)

type ScanResult struct {
	Valid   bool
	Reason  ScanReason
	UsedAt  *time.Time
	Booking *model.Booking
	Seats   []string
}

// ScanTicket verifies a gate scan. The verified flag flips exactly once: the
// UPDATE is conditioned on is_verified still being false, so of two
// simultaneous scans only one reports valid and the loser sees the original
// verified_at. The error return is reserved for storage failures.
func (s *Store) ScanTicket(reference, code string) (*ScanResult, error) {
	var b model.Booking
	if err := s.db.Where("booking_reference = ? AND status = ?", reference, StatusConfirmed).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ScanResult{Valid: false, Reason: ScanNotFound}, nil
		}
		return nil, err
	}

	if res := evaluateScan(&b, code); !res.Valid {
		return res, nil
	}

	now := time.Now()
	res := s.db.Model(&model.Booking{}).
		Where("booking_reference = ? AND is_verified = ?", reference, false).
		Updates(map[string]any{
			"is_verified": true,
			"verified_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race against a concurrent scan of the same ticket.
		var fresh model.Booking
		if err := s.db.Where("booking_reference = ?", reference).First(&fresh).Error; err != nil {
			return nil, err
		}
		return &ScanResult{Valid: false, Reason: ScanAlreadyUsed, UsedAt: fresh.VerifiedAt, Booking: &fresh}, nil
	}

	b.IsVerified = true
	b.VerifiedAt = &now
	seats := DecodeSeats(b.SeatNumbers)
	s.notifier.Notify(b.ShowtimeID, broadcast.Updates(
		seats, broadcast.SeatOccupied, b.BookingReference, broadcast.ActionTicketValidated))
	return &ScanResult{Valid: true, Reason: ScanOK, Booking: &b, Seats: seats}, nil
}

// evaluateScan decides whether a confirmed booking admits this scan. It never
// mutates anything; the caller performs the conditional write.
func evaluateScan(b *model.Booking, code string) *ScanResult {
	if Status(b.Status) != StatusConfirmed {
		return &ScanResult{Valid: false, Reason: ScanNotFound, Booking: b}
	}
	if b.VerificationCode != code {
		return &ScanResult{Valid: false, Reason: ScanCodeMismatch, Booking: b}
	}
	if b.IsVerified {
		return &ScanResult{Valid: false, Reason: ScanAlreadyUsed, UsedAt: b.VerifiedAt, Booking: b}
	}
	return &ScanResult{Valid: true, Reason: ScanOK, Booking: b, Seats: DecodeSeats(b.SeatNumbers)}
}
