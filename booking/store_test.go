package booking

import (
	"testing"

	"bioskop_tiket/broadcast"
	"bioskop_tiket/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type recordingBroadcaster struct {
	showtimes []uint
	updates   [][]broadcast.SeatUpdate
}

func (r *recordingBroadcaster) Notify(showtimeID uint, updates []broadcast.SeatUpdate) {
	r.showtimes = append(r.showtimes, showtimeID)
	r.updates = append(r.updates, updates)
}

func newTestStore(t *testing.T) (*Store, *recordingBroadcaster) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive across the pool.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Booking{}))

	rec := &recordingBroadcaster{}
	return NewStore(db, rec), rec
}

func createPending(t *testing.T, s *Store, showtime uint, movie string, seats []string) *model.Booking {
	t.Helper()
	b, err := s.Create(CreateInput{
		ShowtimeID:    showtime,
		MovieTitle:    movie,
		CustomerName:  "Budi",
		CustomerEmail: "budi@example.com",
		Seats:         seats,
		TotalAmount:   100000,
	})
	require.NoError(t, err)
	return b
}

func TestCreatePendingBooking(t *testing.T) {
	s, _ := newTestStore(t)
	b := createPending(t, s, 3, "The Batman", []string{"L3", "L4"})

	assert.Equal(t, string(StatusPending), b.Status)
	assert.Regexp(t, `^BK\d+`, b.BookingReference)
	assert.Equal(t, `["L3","L4"]`, b.SeatNumbers)
	assert.Equal(t, OrderTypeRegular, b.OrderType)

	found, err := s.FindByReference(b.BookingReference)
	require.NoError(t, err)
	assert.Equal(t, b.ID, found.ID)
}

func TestCreateRejectsBadInput(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Create(CreateInput{CustomerEmail: "budi@example.com", Seats: []string{"L3"}, TotalAmount: 100})
	assert.True(t, IsValidation(err))

	_, err = s.Create(CreateInput{CustomerName: "Budi", CustomerEmail: "budi@example.com", Seats: nil, TotalAmount: 100})
	assert.True(t, IsValidation(err))

	_, err = s.Create(CreateInput{CustomerName: "Budi", CustomerEmail: "budi@example.com", Seats: []string{"L3"}, TotalAmount: 0})
	assert.True(t, IsValidation(err))
}

func TestConfirmPaymentOnlyOnce(t *testing.T) {
	s, rec := newTestStore(t)
	b := createPending(t, s, 3, "The Batman", []string{"L3", "L4"})

	confirmed, err := s.ConfirmPayment(b.BookingReference)
	require.NoError(t, err)
	assert.Equal(t, string(StatusConfirmed), confirmed.Status)
	require.NotNil(t, confirmed.QRCodeData)
	require.Len(t, rec.updates, 1)
	assert.Equal(t, broadcast.SeatBooked, rec.updates[0][0].Status)
	assert.Equal(t, uint(3), rec.showtimes[0])

	_, err = s.ConfirmPayment(b.BookingReference)
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	assert.Len(t, rec.updates, 1, "a rejected confirmation must not broadcast")
}

func TestConfirmPaymentNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.ConfirmPayment("BK0000000000000XXXXX")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfirmPaymentRejectsSeatTakenByOtherBooking(t *testing.T) {
	s, _ := newTestStore(t)
	winner := createPending(t, s, 3, "The Batman", []string{"L3", "L4"})
	loser := createPending(t, s, 3, "The Batman", []string{"L4", "L5"})

	_, err := s.ConfirmPayment(winner.BookingReference)
	require.NoError(t, err)

	_, err = s.ConfirmPayment(loser.BookingReference)
	var conflict *SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"L4"}, conflict.Seats)

	// The loser stays pending and no seat ends up confirmed twice.
	fresh, err := s.FindByReference(loser.BookingReference)
	require.NoError(t, err)
	assert.Equal(t, string(StatusPending), fresh.Status)

	occupied, err := s.OccupiedSeats(3, "The Batman")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"L3", "L4"}, occupied)
}

func TestConfirmPaymentIgnoresOtherShowtimes(t *testing.T) {
	s, _ := newTestStore(t)
	other := createPending(t, s, 4, "The Batman", []string{"L3"})
	_, err := s.ConfirmPayment(other.BookingReference)
	require.NoError(t, err)

	b := createPending(t, s, 3, "The Batman", []string{"L3"})
	_, err = s.ConfirmPayment(b.BookingReference)
	assert.NoError(t, err)
}

func TestScanTicketExactlyOnce(t *testing.T) {
	s, rec := newTestStore(t)
	b := createPending(t, s, 3, "The Batman", []string{"L3"})
	confirmed, err := s.ConfirmPayment(b.BookingReference)
	require.NoError(t, err)

	res, err := s.ScanTicket(confirmed.BookingReference, confirmed.VerificationCode)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, ScanOK, res.Reason)
	assert.Equal(t, []string{"L3"}, res.Seats)
	require.Len(t, rec.updates, 2)
	assert.Equal(t, broadcast.SeatOccupied, rec.updates[1][0].Status)

	again, err := s.ScanTicket(confirmed.BookingReference, confirmed.VerificationCode)
	require.NoError(t, err)
	assert.False(t, again.Valid)
	assert.Equal(t, ScanAlreadyUsed, again.Reason)
	assert.NotNil(t, again.UsedAt)
	assert.Len(t, rec.updates, 2, "a rejected scan must not broadcast")
}

func TestScanTicketWrongCode(t *testing.T) {
	s, _ := newTestStore(t)
	b := createPending(t, s, 3, "The Batman", []string{"L3"})
	confirmed, err := s.ConfirmPayment(b.BookingReference)
	require.NoError(t, err)

	res, err := s.ScanTicket(confirmed.BookingReference, "000000")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, ScanCodeMismatch, res.Reason)

	fresh, err := s.FindByReference(confirmed.BookingReference)
	require.NoError(t, err)
	assert.False(t, fresh.IsVerified)
}

func TestScanTicketPendingBookingInvisible(t *testing.T) {
	s, _ := newTestStore(t)
	b := createPending(t, s, 3, "The Batman", []string{"L3"})

	res, err := s.ScanTicket(b.BookingReference, b.VerificationCode)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, ScanNotFound, res.Reason)
}

func TestAttachPaymentProof(t *testing.T) {
	s, _ := newTestStore(t)
	b := createPending(t, s, 3, "The Batman", []string{"L3"})

	require.NoError(t, s.AttachPaymentProof(b.BookingReference, "payment-abc.png"))
	fresh, err := s.FindByReference(b.BookingReference)
	require.NoError(t, err)
	require.NotNil(t, fresh.PaymentProof)
	assert.Equal(t, "payment-abc.png", *fresh.PaymentProof)
	assert.Equal(t, string(StatusPending), fresh.Status)

	assert.ErrorIs(t, s.AttachPaymentProof("BK-missing", "x.png"), ErrNotFound)
}

func TestBundleOrderLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	input := BundleInput{
		OrderReference: "BNDL-001",
		BundleName:     "Couple Package",
		TotalPrice:     150000,
		CustomerName:   "Budi",
		CustomerPhone:  "081234567890",
		CustomerEmail:  "budi@example.com",
	}

	b, err := s.CreateBundleOrder(input)
	require.NoError(t, err)
	assert.Equal(t, OrderTypeBundle, b.OrderType)
	assert.Equal(t, "[]", b.SeatNumbers)
	assert.Equal(t, string(StatusPending), b.Status)

	_, err = s.CreateBundleOrder(input)
	assert.ErrorIs(t, err, ErrDuplicateReference)

	require.NoError(t, s.AttachBundlePaymentProof("BNDL-001", "payment-xyz.png"))
	assert.ErrorIs(t, s.AttachBundlePaymentProof("BNDL-404", "x.png"), ErrNotFound)

	confirmed, err := s.ConfirmBundlePayment("BNDL-001")
	require.NoError(t, err)
	assert.Equal(t, string(StatusWaitingVerification), confirmed.Status)
	require.NotNil(t, confirmed.PaymentDate)

	_, err = s.ConfirmBundlePayment("BNDL-001")
	assert.ErrorIs(t, err, ErrInvalidState)
}
