package booking

import (
	"errors"
	"strings"
	"time"

	"bioskop_tiket/model"

	"gorm.io/gorm"
)

// Bundle orders (merchandise/ticket packages) reuse the bookings table with
// order_type = bundle, an empty seat set and the bundle_* columns filled in.
// The client supplies the order reference; a verification code is still
// generated so a bundle pickup can be checked at the counter.

// BundleInput is the validated draft for a bundle order.
type BundleInput struct {
	OrderReference    string
	BundleID          string
	BundleName        string
	BundleDescription string
	BundlePrice       float64
	OriginalPrice     float64
	Savings           float64
	Quantity          int
	TotalPrice        float64
	CustomerName      string
	CustomerPhone     string
	CustomerEmail     string
}

func (s *Store) CreateBundleOrder(input BundleInput) (*model.Booking, error) {
	if strings.TrimSpace(input.OrderReference) == "" || strings.TrimSpace(input.BundleName) == "" {
		return nil, &ValidationError{Message: "order_reference dan bundle_name harus diisi"}
	}
	if input.TotalPrice <= 0 {
		return nil, &ValidationError{Message: "total_price harus lebih dari 0"}
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}
	originalPrice := input.OriginalPrice
	if originalPrice == 0 {
		originalPrice = input.BundlePrice
	}
	phone := strings.TrimSpace(input.CustomerPhone)
	paymentStatus := "pending"

	b := model.Booking{
		ShowtimeID:       0,
		MovieTitle:       input.BundleName,
		CustomerName:     strings.TrimSpace(input.CustomerName),
		CustomerEmail:    strings.TrimSpace(input.CustomerEmail),
		SeatNumbers:      "[]",
		TotalAmount:      input.TotalPrice,
		BookingReference: input.OrderReference,
		VerificationCode: NewVerificationCode(),
		Status:           string(StatusPending),
		PaymentStatus:    &paymentStatus,
		OrderType:        OrderTypeBundle,
		BundleName:       &input.BundleName,
		OriginalPrice:    &originalPrice,
		Savings:          &input.Savings,
		Quantity:         &quantity,
	}
	if phone != "" {
		b.CustomerPhone = &phone
	}
	if id := strings.TrimSpace(input.BundleID); id != "" {
		b.BundleID = &id
	}
	if desc := strings.TrimSpace(input.BundleDescription); desc != "" {
		b.BundleDescription = &desc
	}

	if err := s.db.Create(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReference
		}
		return nil, err
	}
	return &b, nil
}

// AttachBundlePaymentProof stores the proof filename and marks the payment as
// submitted. Unlike regular bookings, bundle orders track the payment step on
// their own columns.
func (s *Store) AttachBundlePaymentProof(orderReference, filename string) error {
	now := time.Now()
	res := s.db.Model(&model.Booking{}).
		Where("booking_reference = ? AND order_type = ?", orderReference, OrderTypeBundle).
		Updates(map[string]any{
			"payment_proof":  filename,
			"payment_status": "pending",
			"payment_date":   now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ConfirmBundlePayment moves a pending bundle order to waiting_verification:
// the customer has submitted payment, the back office has yet to verify it.
func (s *Store) ConfirmBundlePayment(orderReference string) (*model.Booking, error) {
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

	var b model.Booking
	if err := lockForUpdate(tx).
		Where("booking_reference = ? AND order_type = ?", orderReference, OrderTypeBundle).
		First(&b).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !CanTransition(Status(b.Status), StatusWaitingVerification) {
		tx.Rollback()
		return nil, ErrInvalidState
	}

	now := time.Now()
	res := tx.Model(&model.Booking{}).
		Where("booking_reference = ? AND status = ?", orderReference, StatusPending).
		Updates(map[string]any{
			"status":         string(StatusWaitingVerification),
			"payment_status": "pending",
			"payment_date":   now,
		})
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrInvalidState
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	b.Status = string(StatusWaitingVerification)
	b.PaymentDate = &now
	return &b, nil
}

// ListBundleOrders returns all bundle orders, newest first.
func (s *Store) ListBundleOrders() ([]model.Booking, error) {
	var orders []model.Booking
	err := s.db.Where("order_type = ?", OrderTypeBundle).
		Order("booking_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListUploadedPayments returns every booking that has a payment proof
// attached, newest first.
func (s *Store) ListUploadedPayments() ([]model.Booking, error) {
	var bookings []model.Booking
	err := s.db.Where("payment_proof IS NOT NULL").
		Order("booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
