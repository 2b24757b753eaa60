// health.go
//
// MealMind API - meal planning and food waste tracking data service

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mealmind/mealmind-api/internal/middleware"
	"github.com/mealmind/mealmind-api/internal/services"
	"github.com/mealmind/mealmind-api/internal/utils"
	"gorm.io/gorm"
)

// HealthHandler handles the liveness route
type HealthHandler struct {
	DB *gorm.DB
}

// Check handles GET /api/health
// @Summary Health check
// @Description Verify service and database availability
// @Tags Health
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := services.CheckHealth(h.DB); err != nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "database unavailable")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "ok", fiber.Map{
		"version": middleware.RequestedAPIVersion(c),
	})
}
