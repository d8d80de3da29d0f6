package handler

import (
	"errors"

	"cinema_storefront/constants"
	"cinema_storefront/helper"
	"cinema_storefront/model"
	"cinema_storefront/utils"

	"github.com/gofiber/fiber/v2"
)

// ConfirmBooking chốt ghế đã chọn, định giá lại phía server và tạo đơn chờ thanh toán
func ConfirmBooking(c *fiber.Ctx) error {
	session, _ := c.Locals("session").(*model.Session)

	input, ok := c.Locals("inputConfirmBooking").(model.ConfirmBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ", errors.New("missing booking input"))
	}

	booking, err := helper.ConfirmDraft(c.Context(), session, input)
	if err != nil {
		switch err.Error() {
		case constants.LOGIN_REQUIRED:
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, err)
		case constants.SHOWTIME_NOT_FOUND:
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err)
		case constants.NO_SEAT_SELECTED:
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_SEAT_SELECTED, err)
		case constants.SEAT_NOT_AVAILABLE:
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_NOT_AVAILABLE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(*model.Session)
	if !ok || session == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("no session"))
	}

	bookings, err := helper.ListBookings(c.Context(), session.User.Id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, helper.ToBookingDetails(bookings))
}
