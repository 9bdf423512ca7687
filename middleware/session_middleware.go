package middleware

import (
	"github.com/gofiber/fiber/v2"

	"leadtrack/utils"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "auth"

// Protected gates an endpoint behind the session cookie. A missing, invalid
// or expired token yields 401.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		if _, err := utils.ParseSessionToken(token); err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		return c.Next()
	}
}
