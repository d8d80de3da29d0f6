package handler

import (
	"errors"

	"cinema_storefront/constants"
	"cinema_storefront/helper"
	"cinema_storefront/model"
	"cinema_storefront/utils"

	"github.com/gofiber/fiber/v2"
)

func TopUp(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(*model.Session)
	if !ok || session == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("no session"))
	}

	input, ok := c.Locals("inputTopUp").(model.TopUpInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TOPUP_AMOUNT_INVALID, errors.New("missing topup input"))
	}

	if err := helper.TopUpBalance(c.Context(), session, input.Amount); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// gửi biên nhận qua email, không chặn response
	utils.SendTopUpReceiptEmail(session.User.Email, input.Amount, session.Balance)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"balance": session.Balance,
	})
}

func GetBalance(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(*model.Session)
	if !ok || session == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("no session"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"balance": session.Balance,
	})
}
