package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cinema_storefront/constants"
	"cinema_storefront/database"
	"cinema_storefront/model"
	"cinema_storefront/utils"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Chờ thanh toán tối đa 15 phút, khớp với hạn của URL cổng thanh toán
const pendingTTL = 15 * time.Minute

const pendingIndexKey = "pendingBookings"

var (
	ErrLoginRequired       = errors.New(constants.LOGIN_REQUIRED)
	ErrInsufficientBalance = errors.New(constants.INSUFFICIENT_BALANCE)
	ErrBookingNotFound     = errors.New(constants.BOOKING_NOT_FOUND)
)

func pendingKey(txnRef string) string {
	return "pendingBooking:" + txnRef
}

func bookingsKey(userId string) string {
	return "movieBookings:" + userId
}

func settledKey(txnRef string) string {
	return "settledBooking:" + txnRef
}

// ConfirmDraft định giá selection phía server và tạo booking chờ thanh toán.
// Bắt buộc có session — không có thì chặn trước khi đụng vào state.
func ConfirmDraft(ctx context.Context, session *model.Session, input model.ConfirmBookingInput) (*model.Booking, error) {
	if session == nil {
		return nil, ErrLoginRequired
	}

	showtime, ok := CachedShowtime(input.ShowtimeId)
	if !ok {
		return nil, errors.New(constants.SHOWTIME_NOT_FOUND)
	}

	grid := LoadSeatGrid(ctx, showtime)
	total, err := PriceSelection(grid, input.Seats)
	if err != nil {
		return nil, err
	}

	// email liên hệ trên form checkout được ưu tiên cho vé điện tử
	contactEmail := input.Email
	if contactEmail == "" {
		contactEmail = session.User.Email
	}

	booking := model.Booking{
		Id:          uuid.NewString(),
		UserId:      session.User.Id,
		UserEmail:   contactEmail,
		MovieId:     showtime.MovieId,
		ShowtimeId:  showtime.Id,
		Seats:       input.Seats,
		TotalPrice:  total,
		BookingDate: time.Now().Format(time.RFC3339),
		Status:      constants.BookingPending,
		TxnRef:      newTxnRef(),
	}

	pending := model.PendingBooking{
		Booking:   booking,
		SessionId: session.Id,
		ExpiresAt: time.Now().Add(pendingTTL).Format(time.RFC3339),
	}
	if err := savePending(ctx, pending); err != nil {
		return nil, err
	}
	return &booking, nil
}

func newTxnRef() string {
	return fmt.Sprintf("PAY_%s_%s", time.Now().Format("20060102"), uuid.NewString()[:8])
}

func savePending(ctx context.Context, pending model.PendingBooking) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	if err := database.Store.Set(ctx, pendingKey(pending.Booking.TxnRef), string(data), pendingTTL); err != nil {
		return err
	}
	return database.Store.SAdd(ctx, pendingIndexKey, pending.Booking.TxnRef)
}

// GetPending đọc booking chờ thanh toán; hết TTL coi như không tồn tại
func GetPending(ctx context.Context, txnRef string) (*model.PendingBooking, error) {
	raw, err := database.Store.Get(ctx, pendingKey(txnRef))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	var pending model.PendingBooking
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

func removePending(ctx context.Context, txnRef string) {
	_ = database.Store.Del(ctx, pendingKey(txnRef))
	_ = database.Store.SRem(ctx, pendingIndexKey, txnRef)
}

// PayWithWallet xử lý nhánh ví: kiểm tra số dư trước, và đẩy bước không
// đảo ngược được xuống cuối — ghi booking lên backend xong mới trừ tiền,
// backend lỗi thì chưa mất đồng nào.
func PayWithWallet(ctx context.Context, session *model.Session, pending *model.PendingBooking) error {
	if session == nil {
		return ErrLoginRequired
	}
	booking := &pending.Booking

	if booking.TotalPrice > session.Balance {
		return ErrInsufficientBalance
	}

	if _, err := Remote.Book(ctx, session.AccessToken, booking.UserId, booking.ShowtimeId, booking.Seats); err != nil {
		return err
	}

	ok, err := DeductBalance(ctx, session, booking.TotalPrice)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInsufficientBalance
	}

	return FinalizeBooking(ctx, booking, constants.MethodWallet)
}

// SettleExternal chốt booking sau khi cổng ngoài (VNPAY, QR) báo thành công.
// Tiền đã thu bên ngoài nên backend lỗi cũng không được làm mất vé của khách:
// ghi nhận cục bộ và log lại để đối soát.
func SettleExternal(ctx context.Context, pending *model.PendingBooking, method string) error {
	booking := &pending.Booking

	session, err := GetSession(ctx, pending.SessionId)
	if err == nil && session != nil {
		if _, err := Remote.Book(ctx, session.AccessToken, booking.UserId, booking.ShowtimeId, booking.Seats); err != nil {
			log.Printf("booking %s: backend persist failed after external settlement: %v", booking.Id, err)
		}
	} else {
		log.Printf("booking %s: session %s gone, persisting locally only", booking.Id, pending.SessionId)
	}

	return FinalizeBooking(ctx, booking, method)
}

// FinalizeBooking: booking thành confirmed, ghi vào lịch sử, xóa bản ghi chờ,
// trừ ghế trống trên cache (lạc quan) và báo cho room websocket của suất chiếu.
func FinalizeBooking(ctx context.Context, booking *model.Booking, method string) error {
	booking.Status = constants.BookingConfirmed
	booking.PaymentMethod = method

	if err := AppendBooking(ctx, booking.UserId, *booking); err != nil {
		return err
	}
	markSettled(ctx, *booking)
	removePending(ctx, booking.TxnRef)
	DecrementAvailableSeats(booking.ShowtimeId, len(booking.Seats))
	BroadcastShowtime(ctx, booking.ShowtimeId)

	sendConfirmationEmail(*booking)
	return nil
}

func sendConfirmationEmail(booking model.Booking) {
	data := utils.BookingConfirmationData{
		BookingCode:   booking.Id,
		Seats:         strings.Join(booking.Seats, ", "),
		TotalAmount:   booking.TotalPrice,
		PaymentMethod: booking.PaymentMethod,
	}
	if movie, ok := MovieById(booking.MovieId); ok {
		data.MovieName = movie.Title
	}
	if showtime, ok := CachedShowtime(booking.ShowtimeId); ok {
		data.Showtime = showtime.StartTime + " - " + showtime.Date
	}
	utils.SendBookingConfirmationEmail(booking.UserEmail, data)
}

// AppendBooking nối booking vào lịch sử của user và ghi lại nguyên danh sách,
// giống hệt cách bản cũ ghi đè key localStorage.
func AppendBooking(ctx context.Context, userId string, booking model.Booking) error {
	bookings, err := ListBookings(ctx, userId)
	if err != nil {
		return err
	}
	bookings = append(bookings, booking)

	data, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return database.Store.Set(ctx, bookingsKey(userId), string(data), 0)
}

func ListBookings(ctx context.Context, userId string) ([]model.Booking, error) {
	raw, err := database.Store.Get(ctx, bookingsKey(userId))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var bookings []model.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// markSettled ghi dấu txnRef đã chốt, để callback của cổng đến muộn
// (sau khi IPN đã xử lý xong) vẫn nhận ra giao dịch thành công
func markSettled(ctx context.Context, booking model.Booking) {
	data, err := json.Marshal(booking)
	if err != nil {
		return
	}
	if err := database.Store.Set(ctx, settledKey(booking.TxnRef), string(data), time.Hour); err != nil {
		log.Printf("booking %s: mark settled failed: %v", booking.Id, err)
	}
}

// GetSettled đọc booking đã chốt theo txnRef
func GetSettled(ctx context.Context, txnRef string) (*model.Booking, error) {
	raw, err := database.Store.Get(ctx, settledKey(txnRef))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	var booking model.Booking
	if err := json.Unmarshal([]byte(raw), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ToBookingDetails gắn thêm tên phim, poster và giờ chiếu cho trang lịch sử vé
func ToBookingDetails(bookings []model.Booking) []model.BookingDetail {
	details := make([]model.BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		var detail model.BookingDetail
		if err := copier.Copy(&detail, &booking); err != nil {
			continue
		}
		if movie, ok := MovieById(booking.MovieId); ok {
			detail.MovieTitle = movie.Title
			detail.PosterUrl = movie.PosterUrl
		}
		if showtime, ok := CachedShowtime(booking.ShowtimeId); ok {
			detail.ShowDate = showtime.Date
			detail.StartTime = showtime.StartTime
		}
		details = append(details, detail)
	}
	return details
}

// SimulateQRSettlement: các phương thức QR chưa nối cổng thật, mô phỏng
// thanh toán xong sau vài giây như bản storefront cũ.
func SimulateQRSettlement(txnRef, method string, delay time.Duration) {
	time.AfterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		pending, err := GetPending(ctx, txnRef)
		if err != nil {
			log.Printf("qr settlement %s: %v", txnRef, err)
			return
		}
		if err := SettleExternal(ctx, pending, method); err != nil {
			log.Printf("qr settlement %s: %v", txnRef, err)
		}
	})
}

// BroadcastShowtime đẩy số ghế trống mới nhất lên kênh Redis của suất chiếu;
// hub websocket sẽ phát tiếp cho các client đang mở sơ đồ ghế.
func BroadcastShowtime(ctx context.Context, showtimeId string) {
	if database.Redis == nil {
		return
	}
	showtime, ok := CachedShowtime(showtimeId)
	if !ok {
		return
	}
	payload, err := json.Marshal(showtime)
	if err != nil {
		return
	}
	if err := database.Redis.Publish(ctx, "showtime:"+showtimeId, payload).Err(); err != nil {
		log.Printf("broadcast showtime %s: %v", showtimeId, err)
	}
}
