package model

// Booking tạo phía storefront với id sinh cục bộ, gửi lên backend khi thanh toán xong
type Booking struct {
	Id            string   `json:"id"`
	UserId        string   `json:"userId"`
	UserEmail     string   `json:"userEmail"`
	MovieId       string   `json:"movieId"`
	ShowtimeId    string   `json:"showtimeId"`
	Seats         []string `json:"seats"`
	TotalPrice    float64  `json:"totalPrice"`
	BookingDate   string   `json:"bookingDate"`
	Status        string   `json:"status"`
	PaymentMethod string   `json:"paymentMethod,omitempty"`
	TxnRef        string   `json:"txnRef,omitempty"`
}

// PendingBooking là bản ghi chờ thanh toán, lưu theo txnRef với TTL
type PendingBooking struct {
	Booking   Booking `json:"booking"`
	SessionId string  `json:"sessionId"`
	ExpiresAt string  `json:"expiresAt"`
}

// BookingResponseDto là bản ghi backend trả về sau POST /Booking/book
type BookingResponseDto struct {
	Id               string   `json:"id"`
	UserId           string   `json:"userId"`
	ShowtimeId       string   `json:"showtimeId"`
	SeatNumbers      []string `json:"seatNumbers"`
	BookingDate      string   `json:"bookingDate"`
	TotalAmount      float64  `json:"totalAmount"`
	PaymentStatus    string   `json:"paymentStatus"`
	BookingStatus    string   `json:"bookingStatus"`
	BookingReference string   `json:"bookingReference"`
}

// BookingDetail là bản ghi lịch sử đã gắn thêm thông tin phim và suất chiếu
type BookingDetail struct {
	Id            string   `json:"id"`
	MovieId       string   `json:"movieId"`
	ShowtimeId    string   `json:"showtimeId"`
	Seats         []string `json:"seats"`
	TotalPrice    float64  `json:"totalPrice"`
	BookingDate   string   `json:"bookingDate"`
	Status        string   `json:"status"`
	PaymentMethod string   `json:"paymentMethod,omitempty"`
	TxnRef        string   `json:"txnRef,omitempty"`
	MovieTitle    string   `json:"movieTitle,omitempty"`
	PosterUrl     string   `json:"posterUrl,omitempty"`
	ShowDate      string   `json:"showDate,omitempty"`
	StartTime     string   `json:"startTime,omitempty"`
}

type ConfirmBookingInput struct {
	ShowtimeId string   `json:"showtimeId" validate:"required"`
	Seats      []string `json:"seats" validate:"required,min=1,dive,required"`
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
}

type CreatePaymentInput struct {
	TxnRef string `json:"txnRef" validate:"required"`
	Method string `json:"method" validate:"required,oneof=wallet vnpay qr_momo qr_zalopay qr_banking"`
}
