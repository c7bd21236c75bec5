package booking

import (
	"errors"
	"strings"

	"bioskop_tiket/broadcast"
	"bioskop_tiket/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store owns the bookings table. Every read and write of the seat_numbers
// column goes through the codec in seats.go; every status change goes through
// the transition table in state.go.
type Store struct {
	db       *gorm.DB
	notifier broadcast.Broadcaster
}

func NewStore(db *gorm.DB, notifier broadcast.Broadcaster) *Store {
	if notifier == nil {
		notifier = broadcast.Noop{}
	}
	return &Store{db: db, notifier: notifier}
}

// lockForUpdate adds FOR UPDATE where the dialect supports it. sqlite has no
// row locks and serializes writers globally, so the clause is skipped there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CreateInput is the validated draft for a regular booking.
type CreateInput struct {
	ShowtimeID    uint
	MovieTitle    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Seats         []string
	TotalAmount   float64
}

// Create persists a pending booking with freshly generated reference and
// verification code. A unique-index collision surfaces as
// ErrDuplicateReference; callers retry with a fresh draft.
func (s *Store) Create(input CreateInput) (*model.Booking, error) {
	if strings.TrimSpace(input.CustomerName) == "" || strings.TrimSpace(input.CustomerEmail) == "" {
		return nil, &ValidationError{Message: "customer_name dan customer_email harus diisi"}
	}
	if input.TotalAmount <= 0 {
		return nil, &ValidationError{Message: "total_amount harus lebih dari 0"}
	}
	encoded, err := EncodeSeats(input.Seats)
	if err != nil {
		return nil, err
	}

	b := model.Booking{
		ShowtimeID:       input.ShowtimeID,
		MovieTitle:       input.MovieTitle,
		CustomerName:     strings.TrimSpace(input.CustomerName),
		CustomerEmail:    strings.TrimSpace(input.CustomerEmail),
		SeatNumbers:      encoded,
		TotalAmount:      input.TotalAmount,
		BookingReference: NewReference(),
		VerificationCode: NewVerificationCode(),
		Status:           string(StatusPending),
		OrderType:        OrderTypeRegular,
	}
	if phone := strings.TrimSpace(input.CustomerPhone); phone != "" {
		b.CustomerPhone = &phone
	}

	if err := s.db.Create(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReference
		}
		return nil, err
	}
	return &b, nil
}

func (s *Store) FindByReference(reference string) (*model.Booking, error) {
	var b model.Booking
	if err := s.db.Where("booking_reference = ?", reference).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListAll returns every booking, newest first.
func (s *Store) ListAll() ([]model.Booking, error) {
	var bookings []model.Booking
	if err := s.db.Order("id DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListByCustomer matches either customer name or email, case-insensitively,
// newest first.
func (s *Store) ListByCustomer(nameOrEmail string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := s.db.
		Where("LOWER(customer_name) = LOWER(?) OR LOWER(customer_email) = LOWER(?)", nameOrEmail, nameOrEmail).
		Order("booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// AttachPaymentProof records the stored filename on a regular booking. The
// status stays pending until payment is explicitly confirmed.
func (s *Store) AttachPaymentProof(reference, filename string) error {
	res := s.db.Model(&model.Booking{}).
		Where("booking_reference = ?", reference).
		Update("payment_proof", filename)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ConfirmPayment moves a pending booking to confirmed. Inside one transaction
// it locks every booking of the showtime in id order, re-checks that none of
// the booking's seats belong to another confirmed booking (creation holds
// nothing, so two pending bookings may claim the same seat) and flips the
// status with a conditional UPDATE. Locking the whole showtime is what
// serializes concurrent confirmations of different bookings: the second
// transaction blocks on the first one's row locks, and once the winner
// commits, the re-read sees its seats as confirmed and fails the conflict
// check. One ordered query acquires every lock, so two confirmations can
// never take rows in opposite order and deadlock.
func (s *Store) ConfirmPayment(reference string) (*model.Booking, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Unlocked read, only to learn which showtime to lock.
	var target model.Booking
	if err := tx.Where("booking_reference = ?", reference).First(&target).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var rows []model.Booking
	if err := lockForUpdate(tx).
		Where("showtime_id = ? AND movie_title = ?", target.ShowtimeID, target.MovieTitle).
		Order("id").
		Find(&rows).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var b *model.Booking
	var taken []string
	for i := range rows {
		if rows[i].ID == target.ID {
			b = &rows[i]
			continue
		}
		if Status(rows[i].Status) == StatusConfirmed {
			taken = append(taken, rows[i].SeatNumbers)
		}
	}
	if b == nil {
		tx.Rollback()
		return nil, ErrNotFound
	}

	switch Status(b.Status) {
	case StatusConfirmed:
		tx.Rollback()
		return nil, ErrAlreadyConfirmed
	case StatusPending:
		// allowed, checked against the table below
	default:
		tx.Rollback()
		return nil, ErrInvalidState
	}
	if !CanTransition(Status(b.Status), StatusConfirmed) {
		tx.Rollback()
		return nil, ErrInvalidState
	}

	seats := DecodeSeats(b.SeatNumbers)
	if b.OrderType == OrderTypeRegular {
		if conflicts := intersectSeats(seats, UnionSeats(taken)); len(conflicts) > 0 {
			tx.Rollback()
			return nil, &SeatConflictError{Seats: conflicts}
		}
	}

	qr := BuildQRPayload(b, seats)
	res := tx.Model(&model.Booking{}).
		Where("booking_reference = ? AND status = ?", reference, StatusPending).
		Updates(map[string]any{
			"status":       string(StatusConfirmed),
			"qr_code_data": qr,
		})
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Someone else transitioned the row between our read and write.
		tx.Rollback()
		return nil, ErrAlreadyConfirmed
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	confirmed := *b
	confirmed.Status = string(StatusConfirmed)
	confirmed.QRCodeData = &qr
	s.notifier.Notify(confirmed.ShowtimeID, broadcast.Updates(
		seats, broadcast.SeatBooked, confirmed.BookingReference, broadcast.ActionBookingConfirmed))
	return &confirmed, nil
}

// intersectSeats returns the seats present in both sets, in the order of the
// first.
func intersectSeats(seats, occupied []string) []string {
	set := make(map[string]struct{}, len(occupied))
	for _, seat := range occupied {
		set[seat] = struct{}{}
	}
	var out []string
	for _, seat := range seats {
		if _, ok := set[seat]; ok {
			out = append(out, seat)
		}
	}
	return out
}

// OccupiedSeats returns the deduplicated union of seats across all confirmed
// bookings of a showtime. Pending bookings reserve nothing.
func (s *Store) OccupiedSeats(showtimeID uint, movieTitle string) ([]string, error) {
	var values []string
	err := s.db.Model(&model.Booking{}).
		Where("showtime_id = ? AND movie_title = ? AND status = ?", showtimeID, movieTitle, StatusConfirmed).
		Pluck("seat_numbers", &values).Error
	if err != nil {
		return nil, err
	}
	return UnionSeats(values), nil
}
