// Package middleware provides the bearer-token guard for protected routes.
package middleware

import (
	"strings"

	"github.com/JohnBalawejder/watcha/internal/auth"
	"github.com/JohnBalawejder/watcha/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the fiber locals key the authenticated user ID is stored under.
const UserIDKey = "userID"

// RequireAuth returns a middleware that rejects requests without a valid
// bearer token and stores the token's user ID in the request locals.
func RequireAuth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authorization header required")
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid authorization header format")
		}

		userID, err := tokens.Validate(parts[1])
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID extracts the authenticated user ID stored by RequireAuth.
func UserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals(UserIDKey).(uint); ok {
		return id
	}
	return 0
}
