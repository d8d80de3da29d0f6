package handler

import (
	"errors"

	"cinema_storefront/constants"
	"cinema_storefront/helper"
	"cinema_storefront/utils"

	"github.com/gofiber/fiber/v2"
)

// GetShowtimeSeats dựng sơ đồ ghế cho suất chiếu, ghế đã bán lấy từ backend
func GetShowtimeSeats(c *fiber.Ctx) error {
	showtime, ok := helper.CachedShowtime(c.Params("id"))
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, errors.New("showtime not cached"))
	}

	grid := helper.LoadSeatGrid(c.Context(), showtime)
	return utils.SuccessResponse(c, fiber.StatusOK, grid)
}
