package middleware

import (
	"errors"
	"strings"

	"cinema_storefront/helper"
	"cinema_storefront/utils"

	"github.com/gofiber/fiber/v2"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		// check header Authorization: Bearer xxx
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

// Protected yêu cầu session token hợp lệ và session còn sống trong store
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		claim, ok := helper.ClaimFromToken(jwtToken)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token claims", nil)
		}

		session, err := helper.GetSession(c.Context(), claim.SessionId)
		if err != nil || session == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session expired", err)
		}

		c.Locals("claim", claim)
		c.Locals("session", session)
		return c.Next()
	}
}

// OptionalSession gắn session nếu có, không có thì vẫn đi tiếp như guest
func OptionalSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Next()
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return c.Next()
		}

		claim, ok := helper.ClaimFromToken(jwtToken)
		if !ok {
			return c.Next()
		}

		if session, err := helper.GetSession(c.Context(), claim.SessionId); err == nil && session != nil {
			c.Locals("claim", claim)
			c.Locals("session", session)
		}
		return c.Next()
	}
}
