package handler

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// AdminSecretHeader carries the shared admin secret.
const AdminSecretHeader = "X-Admin-Secret"

// RequireAdmin guards a route with the shared admin secret.
// A missing header answers 401; a wrong one answers 403.
func RequireAdmin(secret string) fiber.Handler {
	expected := []byte(secret)

	return func(c *fiber.Ctx) error {
		provided := c.Get(AdminSecretHeader)
		if provided == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "admin secret required"})
		}
		if subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			log.Warn().
				Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("ip", c.IP()).
				Msg("rejected admin request: invalid secret")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid admin secret"})
		}
		return c.Next()
	}
}
