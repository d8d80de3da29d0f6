package constants

// Thông báo dùng chung cho toàn bộ handler
const (
	ERROR_INTERNAL_ERROR     = "Có lỗi xảy ra, vui lòng thử lại sau"
	MISSING_LOGIN_INPUT      = "Vui lòng nhập email và mật khẩu"
	INVALID_CREDENTIALS      = "Email hoặc mật khẩu không đúng"
	EMAIL_ALREADY_USED       = "Email đã được sử dụng"
	REGISTER_FAILED          = "Đăng ký thất bại, vui lòng thử lại"
	REGISTER_SUCCESS         = "Đăng ký thành công! Vui lòng đăng nhập."
	LOGIN_REQUIRED           = "Vui lòng đăng nhập để đặt vé"
	INSUFFICIENT_BALANCE     = "Số dư không đủ. Vui lòng nạp thêm tiền!"
	NO_SEAT_SELECTED         = "Vui lòng chọn ít nhất một ghế"
	SEAT_NOT_AVAILABLE       = "Ghế đã được đặt hoặc không tồn tại"
	BOOKING_NOT_FOUND        = "Không tìm thấy đơn đặt vé"
	BOOKING_EXPIRED          = "Đơn đặt vé đã hết hạn thanh toán"
	PAYMENT_METHOD_INVALID   = "Phương thức thanh toán không hợp lệ"
	PAYMENT_FAILED           = "Thanh toán thất bại"
	BOOKING_SUCCESS          = "Đặt vé thành công! Vui lòng kiểm tra email để nhận thông tin vé."
	TOPUP_AMOUNT_INVALID     = "Số tiền nạp không hợp lệ"
	MOVIE_NOT_FOUND          = "Không tìm thấy phim"
	SHOWTIME_NOT_FOUND       = "Không tìm thấy suất chiếu"
	DATA_INPUT_IS_NOT_NUMBER = "Dữ liệu đầu vào phải là số"
)

// Trạng thái booking
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingExpired   = "expired"
)

// Phương thức thanh toán
const (
	MethodWallet    = "wallet"
	MethodVNPay     = "vnpay"
	MethodQRMomo    = "qr_momo"
	MethodQRZaloPay = "qr_zalopay"
	MethodQRBanking = "qr_banking"
)
