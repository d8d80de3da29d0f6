package helper

import (
	"fmt"
	"strings"
	"time"

	"cinema_storefront/config"
	"cinema_storefront/gateway"
	"cinema_storefront/model"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecret đọc qua config để .env được nạp trước khi lấy khóa ký
func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

// Remote là gateway duy nhất tới backend, gán ở main (test gán stub)
var Remote *gateway.Client

func SetRemote(c *gateway.Client) {
	Remote = c
}

// Contains kiểm tra xem 1 phần tử có trong mảng hay không
func Contains(arr []string, val string) bool {
	for _, a := range arr {
		if strings.EqualFold(a, val) {
			return true
		}
	}
	return false
}

func GenerateSessionToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sessionId"] = tokenClaim.SessionId
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Xác thực thuật toán ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// ClaimFromToken đọc TokenClaim từ token đã parse hợp lệ
func ClaimFromToken(token *jwt.Token) (model.TokenClaim, bool) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return model.TokenClaim{}, false
	}

	sessionId, _ := claims["sessionId"].(string)
	userId, _ := claims["userId"].(string)
	email, _ := claims["email"].(string)
	if sessionId == "" {
		return model.TokenClaim{}, false
	}

	return model.TokenClaim{SessionId: sessionId, UserId: userId, Email: email}, true
}
