package model

import "time"

// Booking is a single row in the bookings table. Regular orders carry the
// selected seats in SeatNumbers (canonical form is a JSON string array, but
// legacy rows may hold comma-joined or bare values); bundle orders carry an
// empty seat set plus the bundle_* columns.
type Booking struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	ShowtimeID       uint       `json:"showtime_id"`
	MovieTitle       string     `gorm:"size:255" json:"movie_title"`
	CustomerName     string     `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail    string     `gorm:"size:100;not null" json:"customer_email"`
	CustomerPhone    *string    `gorm:"size:20" json:"customer_phone"`
	SeatNumbers      string     `gorm:"type:text" json:"seat_numbers"`
	TotalAmount      float64    `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	BookingReference string     `gorm:"size:50;uniqueIndex;not null" json:"booking_reference"`
	VerificationCode string     `gorm:"size:50;uniqueIndex;not null" json:"verification_code"`
	Status           string     `gorm:"size:30;default:'pending'" json:"status"`
	IsVerified       bool       `gorm:"default:false" json:"is_verified"`
	VerifiedAt       *time.Time `json:"verified_at"`
	PaymentProof     *string    `gorm:"size:255" json:"payment_proof"`
	PaymentStatus    *string    `gorm:"size:30" json:"payment_status"`
	PaymentDate      *time.Time `json:"payment_date"`
	QRCodeData       *string    `gorm:"column:qr_code_data;type:text" json:"qr_code_data"`
	OrderType        string     `gorm:"size:20;default:'regular'" json:"order_type"`

	// Bundle columns, null for regular bookings.
	BundleID          *string  `gorm:"size:50" json:"bundle_id"`
	BundleName        *string  `gorm:"size:255" json:"bundle_name"`
	BundleDescription *string  `gorm:"type:text" json:"bundle_description"`
	OriginalPrice     *float64 `gorm:"type:decimal(10,2)" json:"original_price"`
	Savings           *float64 `gorm:"type:decimal(10,2)" json:"savings"`
	Quantity          *int     `json:"quantity"`

	BookingDate time.Time `gorm:"autoCreateTime" json:"booking_date"`
}

// CreateBookingInput mirrors the JSON body of POST /api/bookings.
// SeatNumbers is left untyped on purpose: existing clients send either an
// array of seat labels or a single bare value.
type CreateBookingInput struct {
	ShowtimeID    uint    `json:"showtime_id" validate:"required"`
	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	CustomerPhone string  `json:"customer_phone" validate:"omitempty"`
	SeatNumbers   any     `json:"seat_numbers" validate:"required"`
	TotalAmount   float64 `json:"total_amount" validate:"required,gt=0"`
	MovieTitle    string  `json:"movie_title" validate:"omitempty"`
}

type ConfirmPaymentInput struct {
	BookingReference string `json:"booking_reference" validate:"required"`
}

type ScanTicketInput struct {
	QRData string `json:"qr_data" validate:"required"`
}

// BundleOrderInput mirrors POST /api/bookings/bundle-order.
type BundleOrderInput struct {
	OrderReference    string  `json:"order_reference" validate:"required"`
	BundleID          string  `json:"bundle_id" validate:"omitempty"`
	BundleName        string  `json:"bundle_name" validate:"required"`
	BundleDescription string  `json:"bundle_description" validate:"omitempty"`
	BundlePrice       float64 `json:"bundle_price" validate:"omitempty"`
	OriginalPrice     float64 `json:"original_price" validate:"omitempty"`
	Savings           float64 `json:"savings" validate:"omitempty"`
	Quantity          int     `json:"quantity" validate:"omitempty,gte=1"`
	TotalPrice        float64 `json:"total_price" validate:"required,gt=0"`
	CustomerName      string  `json:"customer_name" validate:"required"`
	CustomerPhone     string  `json:"customer_phone" validate:"required"`
	CustomerEmail     string  `json:"customer_email" validate:"required,email"`
}
