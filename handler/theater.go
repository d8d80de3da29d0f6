package handler

import (
	"cinema_storefront/constants"
	"cinema_storefront/helper"
	"cinema_storefront/utils"

	"github.com/gofiber/fiber/v2"
)

func GetTheaters(c *fiber.Ctx) error {
	theaters, err := helper.Remote.GetTheaters(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, theaters)
}
