package handler

import (
	"errors"

	"cinema_storefront/constants"
	"cinema_storefront/helper"
	"cinema_storefront/model"
	"cinema_storefront/utils"

	"github.com/gofiber/fiber/v2"
)

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("missing login input"))
	}

	session, result := helper.Login(c.Context(), input.Email, input.Password)
	if !result.Success {
		message := constants.INVALID_CREDENTIALS
		if len(result.Messages) > 0 {
			message = result.Messages[0]
		}
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, message, errors.New("login failed"))
	}

	token, err := helper.GenerateSessionToken(model.TokenClaim{
		SessionId: session.Id,
		UserId:    session.User.Id,
		Email:     session.User.Email,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// set session token vào HTTPOnly cookie
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false, // nếu deploy HTTPS thì true
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"token":   token,
		"user": fiber.Map{
			"id":    session.User.Id,
			"name":  session.User.Name,
			"email": session.User.Email,
			"role":  session.User.Role,
		},
		"balance": session.Balance,
	})
}

func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu không hợp lệ", errors.New("missing register input"))
	}

	result := helper.Register(c.Context(), input.Name, input.Email, input.Password)
	if !result.Success {
		if len(result.Messages) == 1 && result.Messages[0] == constants.EMAIL_ALREADY_USED {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_USED, errors.New("email already used"))
		}
		if len(result.Messages) > 0 {
			return utils.ErrorListResponse(c, fiber.StatusBadRequest, result.Messages)
		}
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.REGISTER_FAILED, errors.New("register failed"))
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": constants.REGISTER_SUCCESS,
	})
}

func Logout(c *fiber.Ctx) error {
	if session, ok := c.Locals("session").(*model.Session); ok && session != nil {
		if err := helper.DeleteSession(c.Context(), session.Id); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
		MaxAge:   -1,
	})

	return c.JSON(fiber.Map{
		"message": "logout success",
	})
}

// Me trả về session hiện tại cho client khôi phục trạng thái đăng nhập
func Me(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(*model.Session)
	if !ok || session == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("no session"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"user":    session.User,
		"balance": session.Balance,
	})
}
