package helper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema_storefront/constants"
	"cinema_storefront/database"
	"cinema_storefront/gateway"
	"cinema_storefront/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend giả: seats trống toàn bộ, book thành công trừ khi failBooking bật
func bookingBackend(t *testing.T, failBooking bool) *int {
	t.Helper()
	bookCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/seats"):
			w.Write([]byte(`{"totalSeats":120,"availableSeats":120,"bookedSeatsCount":0,"bookedSeatsList":[]}`))
		case r.URL.Path == "/Booking/book":
			bookCalls++
			if failBooking {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"message":"boom"}`))
				return
			}
			w.Write([]byte(`{"id":"bk-1","bookingReference":"REF-1","bookingStatus":"Confirmed"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	SetRemote(&gateway.Client{BaseURL: srv.URL, HTTP: srv.Client()})
	return &bookCalls
}

func setupBookingTest(t *testing.T, failBooking bool) (*model.Session, *int) {
	t.Helper()
	prev := database.Store
	database.Store = database.NewMemKV()
	t.Cleanup(func() { database.Store = prev })

	SetCatalog([]model.Movie{{Id: "m1", Title: "Người Dơi", Genre: "Hành động"}})
	t.Cleanup(func() { SetCatalog(nil) })

	cacheShowtime(model.Showtime{Id: "st-1", MovieId: "m1", TicketPrice: 10, AvailableSeats: 120, Date: "2025-01-10", StartTime: "19:30"})

	bookCalls := bookingBackend(t, failBooking)

	session := &model.Session{Id: "s1", User: model.User{Id: "u1", Email: "an@example.com"}, Balance: 20, AccessToken: "tok"}
	require.NoError(t, SaveSession(context.Background(), session))
	return session, bookCalls
}

func TestConfirmDraft_RequiresLogin(t *testing.T) {
	setupBookingTest(t, false)

	_, err := ConfirmDraft(context.Background(), nil, model.ConfirmBookingInput{ShowtimeId: "st-1", Seats: []string{"C1"}})
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestConfirmDraft_UnknownShowtime(t *testing.T) {
	session, _ := setupBookingTest(t, false)

	_, err := ConfirmDraft(context.Background(), session, model.ConfirmBookingInput{ShowtimeId: "st-999", Seats: []string{"C1"}})
	require.Error(t, err)
	assert.Equal(t, constants.SHOWTIME_NOT_FOUND, err.Error())
}

func TestConfirmDraft_PricesSelectionServerSide(t *testing.T) {
	session, _ := setupBookingTest(t, false)
	ctx := context.Background()

	booking, err := ConfirmDraft(ctx, session, model.ConfirmBookingInput{
		ShowtimeId: "st-1",
		Seats:      []string{"A1", "C1"}, // premium + thường
		Name:       "An",
		Email:      "an@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, booking.TotalPrice)
	assert.Equal(t, constants.BookingPending, booking.Status)
	assert.True(t, strings.HasPrefix(booking.TxnRef, "PAY_"))

	pending, err := GetPending(ctx, booking.TxnRef)
	require.NoError(t, err)
	assert.Equal(t, booking.Id, pending.Booking.Id)
	assert.Equal(t, "s1", pending.SessionId)
}

func TestPayWithWallet_Success(t *testing.T) {
	session, bookCalls := setupBookingTest(t, false)
	ctx := context.Background()

	booking, err := ConfirmDraft(ctx, session, model.ConfirmBookingInput{
		ShowtimeId: "st-1", Seats: []string{"C1", "C2"}, Name: "An", Email: "an@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, 20.0, booking.TotalPrice)

	pending, err := GetPending(ctx, booking.TxnRef)
	require.NoError(t, err)
	require.NoError(t, PayWithWallet(ctx, session, pending))

	assert.Equal(t, 1, *bookCalls)
	assert.Equal(t, 0.0, session.Balance)

	// bản ghi đưa lại cho client cũng phải là confirmed, không còn pending
	assert.Equal(t, constants.BookingConfirmed, pending.Booking.Status)
	assert.Equal(t, constants.MethodWallet, pending.Booking.PaymentMethod)

	// pending đã dọn, booking vào lịch sử với trạng thái confirmed
	_, err = GetPending(ctx, booking.TxnRef)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	bookings, err := ListBookings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, constants.BookingConfirmed, bookings[0].Status)
	assert.Equal(t, constants.MethodWallet, bookings[0].PaymentMethod)

	// cache suất chiếu trừ 2 ghế
	cached, ok := CachedShowtime("st-1")
	require.True(t, ok)
	assert.Equal(t, 118, cached.AvailableSeats)
}

func TestPayWithWallet_InsufficientBalance(t *testing.T) {
	session, bookCalls := setupBookingTest(t, false)
	ctx := context.Background()

	booking, err := ConfirmDraft(ctx, session, model.ConfirmBookingInput{
		ShowtimeId: "st-1", Seats: []string{"C1", "C2", "C3"}, Name: "An", Email: "an@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, 30.0, booking.TotalPrice)

	pending, err := GetPending(ctx, booking.TxnRef)
	require.NoError(t, err)

	err = PayWithWallet(ctx, session, pending)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// không gọi backend, không trừ tiền, pending còn nguyên
	assert.Equal(t, 0, *bookCalls)
	assert.Equal(t, 20.0, session.Balance)
	_, err = GetPending(ctx, booking.TxnRef)
	assert.NoError(t, err)
}

func TestPayWithWallet_BackendFailureKeepsBalance(t *testing.T) {
	session, _ := setupBookingTest(t, true)
	ctx := context.Background()

	booking, err := ConfirmDraft(ctx, session, model.ConfirmBookingInput{
		ShowtimeId: "st-1", Seats: []string{"C1"}, Name: "An", Email: "an@example.com",
	})
	require.NoError(t, err)

	pending, err := GetPending(ctx, booking.TxnRef)
	require.NoError(t, err)

	err = PayWithWallet(ctx, session, pending)
	require.Error(t, err)

	// backend lỗi trước khi trừ tiền → ví không đổi, chưa có booking nào
	assert.Equal(t, 20.0, session.Balance)
	bookings, err := ListBookings(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestSettleExternal_FinalizesDespiteBackendFailure(t *testing.T) {
	session, _ := setupBookingTest(t, true)
	ctx := context.Background()

	booking, err := ConfirmDraft(ctx, session, model.ConfirmBookingInput{
		ShowtimeId: "st-1", Seats: []string{"H1"}, Name: "An", Email: "an@example.com",
	})
	require.NoError(t, err)

	pending, err := GetPending(ctx, booking.TxnRef)
	require.NoError(t, err)

	// tiền đã thu ở cổng ngoài, backend lỗi vẫn phải giữ vé cho khách
	require.NoError(t, SettleExternal(ctx, pending, constants.MethodVNPay))

	assert.Equal(t, constants.BookingConfirmed, pending.Booking.Status)
	assert.Equal(t, constants.MethodVNPay, pending.Booking.PaymentMethod)

	bookings, err := ListBookings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, constants.BookingConfirmed, bookings[0].Status)
	assert.Equal(t, constants.MethodVNPay, bookings[0].PaymentMethod)

	_, err = GetPending(ctx, booking.TxnRef)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetSettled_RecognizesFinalizedReference(t *testing.T) {
	session, _ := setupBookingTest(t, false)
	ctx := context.Background()

	booking, err := ConfirmDraft(ctx, session, model.ConfirmBookingInput{
		ShowtimeId: "st-1", Seats: []string{"C1"}, Name: "An", Email: "an@example.com",
	})
	require.NoError(t, err)

	_, err = GetSettled(ctx, booking.TxnRef)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	pending, err := GetPending(ctx, booking.TxnRef)
	require.NoError(t, err)
	require.NoError(t, SettleExternal(ctx, pending, constants.MethodVNPay))

	// callback của cổng đến sau IPN vẫn tra được giao dịch đã chốt
	settled, err := GetSettled(ctx, booking.TxnRef)
	require.NoError(t, err)
	assert.Equal(t, booking.Id, settled.Id)
	assert.Equal(t, constants.BookingConfirmed, settled.Status)
}

func TestToBookingDetails_EnrichesWithMovieAndShowtime(t *testing.T) {
	setupBookingTest(t, false)

	details := ToBookingDetails([]model.Booking{{
		Id:         "b1",
		MovieId:    "m1",
		ShowtimeId: "st-1",
		Seats:      []string{"A1"},
		TotalPrice: 15,
		Status:     constants.BookingConfirmed,
	}})

	require.Len(t, details, 1)
	assert.Equal(t, "b1", details[0].Id)
	assert.Equal(t, 15.0, details[0].TotalPrice)
	assert.Equal(t, "Người Dơi", details[0].MovieTitle)
	assert.Equal(t, "2025-01-10", details[0].ShowDate)
	assert.Equal(t, "19:30", details[0].StartTime)
}

func TestCachedShowtime_DecrementFloorsAtZero(t *testing.T) {
	cacheShowtime(model.Showtime{Id: "st-floor", AvailableSeats: 3})

	DecrementAvailableSeats("st-floor", 5)
	cached, ok := CachedShowtime("st-floor")
	require.True(t, ok)
	assert.Equal(t, 0, cached.AvailableSeats)
}
