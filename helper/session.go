package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"cinema_storefront/constants"
	"cinema_storefront/database"
	"cinema_storefront/gateway"
	"cinema_storefront/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Số dư khởi tạo cho lần đăng nhập đầu tiên, như bản storefront cũ
const startingBalance = 100.0

const sessionTTL = 7 * 24 * time.Hour

func sessionKey(sessionId string) string {
	return "currentUser:" + sessionId
}

func balanceKey(userId string) string {
	return "walletBalance:" + userId
}

func SaveSession(ctx context.Context, s *model.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return database.Store.Set(ctx, sessionKey(s.Id), string(data), sessionTTL)
}

func GetSession(ctx context.Context, sessionId string) (*model.Session, error) {
	raw, err := database.Store.Get(ctx, sessionKey(sessionId))
	if err != nil {
		return nil, err
	}
	var s model.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func DeleteSession(ctx context.Context, sessionId string) error {
	return database.Store.Del(ctx, sessionKey(sessionId))
}

// Login đổi credentials lấy token backend, nạp profile và mở session mới.
// Lỗi được đổi thành kết quả có thông báo đọc được, không ném ra ngoài.
func Login(ctx context.Context, email, password string) (*model.Session, model.AuthResult) {
	loginResp, err := Remote.Login(ctx, email, password)
	if err != nil {
		return nil, model.AuthResult{Success: false, Messages: []string{loginFailureMessage(err)}}
	}

	user, err := Remote.GetUserInfo(ctx, loginResp.AccessToken)
	if err != nil {
		return nil, model.AuthResult{Success: false, Messages: []string{constants.ERROR_INTERNAL_ERROR}}
	}

	session := &model.Session{
		Id:          uuid.NewString(),
		User:        *user,
		Balance:     restoreBalance(ctx, user.Id),
		AccessToken: loginResp.AccessToken,
	}
	if err := SaveSession(ctx, session); err != nil {
		return nil, model.AuthResult{Success: false, Messages: []string{constants.ERROR_INTERNAL_ERROR}}
	}

	return session, model.AuthResult{Success: true}
}

// loginFailureMessage: lấy message backend nếu có, không lộ nguyên nhân cụ thể
func loginFailureMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == fiber.StatusUnauthorized || apiErr.Status == fiber.StatusBadRequest {
			return constants.INVALID_CREDENTIALS
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return constants.ERROR_INTERNAL_ERROR
}

// restoreBalance giữ lại số dư ví của user từ lần đăng nhập trước
func restoreBalance(ctx context.Context, userId string) float64 {
	raw, err := database.Store.Get(ctx, balanceKey(userId))
	if err != nil {
		return startingBalance
	}
	balance, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return startingBalance
	}
	return balance
}

// Register gửi đăng ký lên backend. Không tự đăng nhập sau khi thành công.
// 400 → gom toàn bộ lỗi field thành danh sách; 409 → email trùng; còn lại → generic.
func Register(ctx context.Context, name, email, password string) model.AuthResult {
	err := Remote.Register(ctx, name, email, password)
	if err == nil {
		return model.AuthResult{Success: true}
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case fiber.StatusBadRequest:
			if messages := apiErr.FieldMessages(); len(messages) > 0 {
				return model.AuthResult{Success: false, Messages: messages}
			}
		case fiber.StatusConflict:
			return model.AuthResult{Success: false, Messages: []string{constants.EMAIL_ALREADY_USED}}
		}
	}
	return model.AuthResult{Success: false, Messages: []string{constants.REGISTER_FAILED}}
}

// TopUpBalance cộng tiền vào ví và ghi lại session
func TopUpBalance(ctx context.Context, session *model.Session, amount float64) error {
	session.Balance += amount
	if err := persistBalance(ctx, session); err != nil {
		return err
	}
	log.Printf("nạp $%.2f vào ví của %s, số dư %.2f", amount, session.User.Email, session.Balance)
	return nil
}

// DeductBalance trừ tiền có kiểm soát: không đủ thì trả false và không đổi gì.
// Không gọi backend — số dư ví chỉ là state cục bộ của storefront.
func DeductBalance(ctx context.Context, session *model.Session, amount float64) (bool, error) {
	if amount > session.Balance {
		return false, nil
	}
	session.Balance -= amount
	if err := persistBalance(ctx, session); err != nil {
		// hoàn lại bản trong bộ nhớ cho khớp với store
		session.Balance += amount
		return false, err
	}
	return true, nil
}

func persistBalance(ctx context.Context, session *model.Session) error {
	if err := SaveSession(ctx, session); err != nil {
		return err
	}
	return database.Store.Set(ctx, balanceKey(session.User.Id),
		fmt.Sprintf("%g", session.Balance), 0)
}
