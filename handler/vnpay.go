package handler

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"strconv"
	"time"

	"cinema_storefront/config"
	"cinema_storefront/model"
)

// VNPay Service
type VNPay struct {
	Config model.VNPayConfig
}

func NewVNPay() *VNPay {
	return &VNPay{
		Config: model.VNPayConfig{
			TmnCode:      config.Config("VNP_TMNCODE"),
			HashSecret:   config.Config("VNP_HASHSECRET"),
			BaseURL:      config.ConfigDefault("VNP_URL", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"),
			ReturnURL:    config.Config("APP_URL") + "/vnpay/return",
			IPNURL:       config.Config("APP_URL") + "/vnpay/ipn",
			ExchangeRate: int64(config.ConfigInt("VNP_EXCHANGE_RATE", 26000)),
		},
	}
}

// Tạo Payment URL
func (v *VNPay) BuildPaymentUrl(req model.PaymentRequest) (string, error) {
	now := time.Now()

	// Giá vé tính bằng USD, cổng nhận VND * 100
	amount := int64(req.Amount*float64(v.Config.ExchangeRate)) * 100

	// Params
	params := url.Values{}
	params.Add("vnp_Version", "2.1.0")
	params.Add("vnp_Command", "pay")
	params.Add("vnp_TmnCode", v.Config.TmnCode)
	params.Add("vnp_Amount", strconv.FormatInt(amount, 10))
	params.Add("vnp_CreateDate", now.Format("20060102150405"))
	params.Add("vnp_CurrCode", "VND")
	params.Add("vnp_IpAddr", req.IPAddr)
	params.Add("vnp_Locale", "vn")
	params.Add("vnp_OrderInfo", req.OrderInfo)
	params.Add("vnp_OrderType", "other")
	params.Add("vnp_ReturnUrl", v.Config.ReturnURL)
	params.Add("vnp_TxnRef", req.TxnRef)
	params.Add("vnp_ExpireDate", now.Add(15*time.Minute).Format("20060102150405"))

	// Encode tự sort key theo alphabet, đúng thứ tự cổng yêu cầu khi ký
	query := params.Encode()
	hash, err := v.generateHash(query)
	if err != nil {
		return "", err
	}
	fullQuery := query + "&vnp_SecureHashType=HmacSHA512&vnp_SecureHash=" + hash

	return v.Config.BaseURL + "?" + fullQuery, nil
}

// Verify Return URL (Callback)
func (v *VNPay) VerifyReturnUrl(query url.Values) model.PaymentResponse {
	secureHash := query.Get("vnp_SecureHash")
	query.Del("vnp_SecureHash")
	query.Del("vnp_SecureHashType")

	// Re-hash
	expectedHash, _ := v.generateHash(query.Encode())

	if secureHash == "" || !hmac.Equal([]byte(secureHash), []byte(expectedHash)) {
		return model.PaymentResponse{IsSuccess: false, Message: "Invalid hash"}
	}

	if query.Get("vnp_ResponseCode") == "00" {
		amount, _ := strconv.ParseInt(query.Get("vnp_Amount"), 10, 64)
		return model.PaymentResponse{
			IsSuccess: true,
			TxnRef:    query.Get("vnp_TxnRef"),
			Amount:    amount / 100,
			Status:    "PAID",
		}
	}

	return model.PaymentResponse{IsSuccess: false, TxnRef: query.Get("vnp_TxnRef"), Message: "Payment failed"}
}

// Verify IPN (Server-to-Server)
func (v *VNPay) VerifyIPN(query url.Values) model.PaymentResponse {
	secureHash := query.Get("vnp_SecureHash")
	query.Del("vnp_SecureHash")
	query.Del("vnp_SecureHashType")

	expectedHash, _ := v.generateHash(query.Encode())

	if secureHash == "" || !hmac.Equal([]byte(secureHash), []byte(expectedHash)) {
		return model.PaymentResponse{IsSuccess: false, Message: "Invalid IPN hash"}
	}

	if query.Get("vnp_ResponseCode") == "00" {
		return model.PaymentResponse{
			IsSuccess: true,
			TxnRef:    query.Get("vnp_TxnRef"),
			Status:    "PAID",
		}
	}

	return model.PaymentResponse{IsSuccess: false, TxnRef: query.Get("vnp_TxnRef"), Message: "IPN failed"}
}

// Helpers
func (v *VNPay) generateHash(data string) (string, error) {
	h := hmac.New(sha512.New, []byte(v.Config.HashSecret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil)), nil
}
