// users.go
//
// MealMind API - meal planning and food waste tracking data service

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mealmind/mealmind-api/internal/services"
	"gorm.io/gorm"
)

// UserHandler handles user directory routes
type UserHandler struct {
	DB *gorm.DB
}

// ListUsers handles GET /api/users
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers(h.DB)
	if err != nil {
		return respondError(c, "listUsers", err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// GetUser handles GET /api/users/:userId
// @Summary Get user
// @Tags Users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{userId} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return respondError(c, "getUser", err)
	}

	user, err := services.GetUser(h.DB, userID)
	if err != nil {
		return respondError(c, "getUser", err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
