// common.go
//
// MealMind API - meal planning and food waste tracking data service

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mealmind/mealmind-api/internal/types"
	"github.com/mealmind/mealmind-api/internal/utils"
)

// respondError maps a service error to its HTTP shape. Validation and
// conflict errors read back to the caller verbatim; anything unclassified
// is logged and masked as an internal error.
func respondError(c *fiber.Ctx, operation string, err error) error {
	switch {
	case types.IsValidation(err):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case types.IsNotFound(err):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case types.IsConflict(err):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.InternalErrorResponse(c, operation, err)
	}
}

// paramID parses a positive numeric path parameter.
func paramID(c *fiber.Ctx, name string) (uint64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, types.NewValidation("invalid %s", name)
	}
	return uint64(id), nil
}
