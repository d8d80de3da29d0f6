package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"time"

	"cinema_storefront/config"
	"cinema_storefront/constants"
	"cinema_storefront/helper"
	"cinema_storefront/model"
	"cinema_storefront/utils"

	"github.com/gofiber/fiber/v2"
)

// QR mô phỏng báo thành công sau vài giây, như cổng demo
const qrSettleDelay = 8 * time.Second

func CreatePayment(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(*model.Session)
	if !ok || session == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("no session"))
	}

	input, ok := c.Locals("inputCreatePayment").(model.CreatePaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_METHOD_INVALID, errors.New("missing payment input"))
	}

	pending, err := helper.GetPending(c.Context(), input.TxnRef)
	if err != nil {
		if errors.Is(err, helper.ErrBookingNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_EXPIRED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if pending.Booking.UserId != session.User.Id {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.BOOKING_NOT_FOUND, errors.New("booking belongs to another user"))
	}

	switch input.Method {
	case constants.MethodWallet:
		return payWithWallet(c, session, pending)
	case constants.MethodVNPay:
		return payWithVNPay(c, pending)
	case constants.MethodQRMomo, constants.MethodQRZaloPay, constants.MethodQRBanking:
		return payWithQR(c, pending, input.Method)
	}
	return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_METHOD_INVALID, errors.New("unknown method"))
}

func payWithWallet(c *fiber.Ctx, session *model.Session, pending *model.PendingBooking) error {
	if err := helper.PayWithWallet(c.Context(), session, pending); err != nil {
		if errors.Is(err, helper.ErrInsufficientBalance) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INSUFFICIENT_BALANCE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.PAYMENT_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.BOOKING_SUCCESS,
		"booking": pending.Booking,
		"balance": session.Balance,
	})
}

func payWithVNPay(c *fiber.Ctx, pending *model.PendingBooking) error {
	vnpay := NewVNPay()
	req := model.PaymentRequest{
		Amount:    pending.Booking.TotalPrice,
		OrderInfo: fmt.Sprintf("Thanh toan ve xem phim %s", pending.Booking.TxnRef),
		TxnRef:    pending.Booking.TxnRef,
		IPAddr:    c.IP(),
	}

	paymentUrl, err := vnpay.BuildPaymentUrl(req)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tạo payment URL", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":    "Tạo thanh toán thành công",
		"paymentUrl": paymentUrl,
		"txnRef":     pending.Booking.TxnRef,
	})
}

func payWithQR(c *fiber.Ctx, pending *model.PendingBooking, method string) error {
	payload := fmt.Sprintf("%s|%s|%.2f", method, pending.Booking.TxnRef, pending.Booking.TotalPrice)
	png, err := utils.GenerateQRCode(payload, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// cổng demo: tự báo thành công sau vài giây
	helper.SimulateQRSettlement(pending.Booking.TxnRef, method, qrSettleDelay)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"qrCode":    "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		"txnRef":    pending.Booking.TxnRef,
		"expiresAt": pending.ExpiresAt,
	})
}

// GetPaymentStatus cho client poll kết quả sau khi quét QR hoặc quay về từ cổng
func GetPaymentStatus(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(*model.Session)
	if !ok || session == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("no session"))
	}

	txnRef := c.Params("txnRef")

	// còn pending thì chưa thanh toán xong
	if _, err := helper.GetPending(c.Context(), txnRef); err == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"status": constants.BookingPending})
	}

	bookings, err := helper.ListBookings(c.Context(), session.User.Id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	for _, b := range bookings {
		if b.TxnRef == txnRef {
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"status": b.Status, "booking": b})
		}
	}

	return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, errors.New("txnRef unknown"))
}

func VNPayCallback(c *fiber.Ctx) error {
	vnpay := NewVNPay()
	query, _ := url.ParseQuery(string(c.Request().URI().QueryString()))

	result := vnpay.VerifyReturnUrl(query)
	if result.IsSuccess {
		pending, err := helper.GetPending(c.Context(), result.TxnRef)
		if err != nil {
			// IPN có thể đã chốt trước khi khách quay về
			if _, err := helper.GetSettled(c.Context(), result.TxnRef); err == nil {
				return c.Redirect(fmt.Sprintf("%s/success?txnRef=%s", config.Config("APP_URL"), result.TxnRef))
			}
			return c.Redirect(fmt.Sprintf("%s/payment-failed?reason=%s", config.Config("APP_URL"), url.QueryEscape(constants.BOOKING_EXPIRED)))
		}

		if err := helper.SettleExternal(c.Context(), pending, constants.MethodVNPay); err != nil {
			return c.Redirect(fmt.Sprintf("%s/payment-failed?reason=%s", config.Config("APP_URL"), url.QueryEscape(constants.PAYMENT_FAILED)))
		}
		return c.Redirect(fmt.Sprintf("%s/success?txnRef=%s", config.Config("APP_URL"), result.TxnRef))
	}

	// Failed
	return c.Redirect(fmt.Sprintf("%s/payment-failed?reason=%s", config.Config("APP_URL"), url.QueryEscape(result.Message)))
}

func VNPayIPN(c *fiber.Ctx) error {
	vnpay := NewVNPay()

	// IPN gửi form-urlencoded trong body
	query, _ := url.ParseQuery(string(c.Body()))
	result := vnpay.VerifyIPN(query)

	if result.IsSuccess {
		// idempotent: booking đã chốt thì GetPending không còn bản ghi
		if pending, err := helper.GetPending(c.Context(), result.TxnRef); err == nil {
			if err := helper.SettleExternal(c.Context(), pending, constants.MethodVNPay); err != nil {
				return c.JSON(fiber.Map{"RspCode": "99", "Message": "Unknown error"})
			}
		}

		return c.JSON(fiber.Map{
			"RspCode": "00",
			"Message": "Success",
		})
	}

	return c.JSON(fiber.Map{
		"RspCode": "01",
		"Message": "Failed",
	})
}
