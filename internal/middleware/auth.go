package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/bsg-server/internal/config"
	"github.com/example/bsg-server/internal/utils"
)

const (
	adminIDContextKey    = "currentAdminID"
	adminEmailContextKey = "currentAdminEmail"
)

// RequireAdmin validates bearer JWTs and loads the admin identity into context.
func RequireAdmin(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing or invalid authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing or invalid authorization header")
		}

		adminID, email, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(adminIDContextKey, adminID)
		c.Locals(adminEmailContextKey, email)
		return c.Next()
	}
}

// GetCurrentAdmin extracts the authenticated admin identity from context.
func GetCurrentAdmin(c *fiber.Ctx) (uuid.UUID, string, bool) {
	id, ok := c.Locals(adminIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}

	email, _ := c.Locals(adminEmailContextKey).(string)
	return id, email, true
}
