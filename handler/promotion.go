package handler

import (
	"errors"

	"cinema_storefront/model"
	"cinema_storefront/utils"

	"github.com/gofiber/fiber/v2"
)

// Khuyến mãi hiện chưa có API backend, seed cứng như bản storefront cũ
var promotions = []model.Promotion{
	{
		Id:          "1",
		Title:       "Giảm 50% vé xem phim cuối tuần",
		Description: "Áp dụng cho tất cả suất chiếu từ thứ 6 đến chủ nhật",
		Discount:    50,
		ValidUntil:  "2025-02-28",
		Image:       "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg?auto=compress&cs=tinysrgb&w=600",
		Code:        "WEEKEND50",
	},
	{
		Id:          "2",
		Title:       "Mua 2 tặng 1 - Combo bắp nước",
		Description: "Mua 2 combo bắp nước size L, tặng 1 combo size M",
		Discount:    33,
		ValidUntil:  "2025-01-31",
		Image:       "https://images.pexels.com/photos/274131/pexels-photo-274131.jpeg?auto=compress&cs=tinysrgb&w=600",
		Code:        "COMBO321",
	},
	{
		Id:          "3",
		Title:       "Sinh viên giảm 30%",
		Description: "Xuất trình thẻ sinh viên để được giảm giá",
		Discount:    30,
		ValidUntil:  "2025-12-31",
		Image:       "https://images.pexels.com/photos/7991226/pexels-photo-7991226.jpeg?auto=compress&cs=tinysrgb&w=600",
		Code:        "STUDENT30",
	},
}

func GetPromotions(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, promotions)
}

func GetPromotionByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	for _, p := range promotions {
		if p.Code == code {
			return utils.SuccessResponse(c, fiber.StatusOK, p)
		}
	}
	return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy khuyến mãi", errors.New("promotion code unknown"))
}
