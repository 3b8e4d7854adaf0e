package handlers

import (
	"errors"
	"strings"

	applog "productgen/internal/log"
	"productgen/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireToken accepts "Authorization: Bearer <jwt>" issued by
// POST /authenticate and stores the username in Locals("user").
func RequireToken(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tok := ""
		if strings.HasPrefix(header, "Bearer ") {
			tok = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		user, err := auth.Verify(tok)
		if err != nil {
			applog.Security(c, "access.denied.token", map[string]any{
				"has_token": tok != "",
				"expired":   errors.Is(err, services.ErrExpiredToken),
			})
			return jsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		c.Locals("user", user)
		return c.Next()
	}
}
