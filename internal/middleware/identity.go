package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mealmind/mealmind-api/internal/utils"
)

// UserIDKey is the Locals key under which RequireUser stores the caller's ID.
const UserIDKey = "userID"

// RequireUser resolves the acting user from the user_id query parameter and
// stores it request-scoped in Locals. Identity is always an explicit request
// parameter here; there is no ambient session state.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("user_id")
		if raw == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "user_id query parameter is required")
		}

		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || userID == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "user_id must be a positive integer")
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID returns the identity stored by RequireUser, or 0 if absent.
func UserID(c *fiber.Ctx) uint64 {
	if v, ok := c.Locals(UserIDKey).(uint64); ok {
		return v
	}
	return 0
}
