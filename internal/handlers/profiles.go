// profiles.go
//
// MealMind API - meal planning and food waste tracking data service

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mealmind/mealmind-api/internal/middleware"
	"github.com/mealmind/mealmind-api/internal/services"
	"github.com/mealmind/mealmind-api/internal/types"
	"github.com/mealmind/mealmind-api/internal/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProfileHandler handles diet and budget profile routes
type ProfileHandler struct {
	DB *gorm.DB
}

type createDietProfileRequest struct {
	UserID    types.FlexInt `json:"user_id"`
	DietTypes []string      `json:"diet_types"`
	Notes     string        `json:"notes"`
}

type updateDietProfileRequest struct {
	UserID    types.FlexInt `json:"user_id"`
	DietTypes *[]string     `json:"diet_types"`
	Notes     *string       `json:"notes"`
}

type createBudgetProfileRequest struct {
	UserID             types.FlexInt    `json:"user_id"`
	WeeklyBudgetAmount *decimal.Decimal `json:"weekly_budget_amount"`
	Currency           string           `json:"currency"`
}

type updateBudgetProfileRequest struct {
	UserID             types.FlexInt    `json:"user_id"`
	WeeklyBudgetAmount *decimal.Decimal `json:"weekly_budget_amount"`
	Currency           *string          `json:"currency"`
}

// GetDietProfile handles GET /api/diet-profile
// @Summary Get diet profile
// @Tags Profiles
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} services.DietProfileView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /diet-profile [get]
func (h *ProfileHandler) GetDietProfile(c *fiber.Ctx) error {
	view, err := services.GetDietProfile(h.DB, middleware.UserID(c))
	if err != nil {
		return respondError(c, "getDietProfile", err)
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// CreateDietProfile handles POST /api/diet-profile
// @Summary Create diet profile
// @Description Store a user's diet profile; creating twice conflicts
// @Tags Profiles
// @Accept json
// @Produce json
// @Param body body createDietProfileRequest true "Profile to create"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /diet-profile [post]
func (h *ProfileHandler) CreateDietProfile(c *fiber.Ctx) error {
	var req createDietProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.UserID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "user_id is required")
	}
	if req.DietTypes == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "diet_types is required")
	}

	view, err := services.CreateDietProfile(h.DB, req.UserID.Uint64(), req.DietTypes, req.Notes)
	if err != nil {
		return respondError(c, "createDietProfile", err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "diet profile created",
		fiber.Map{"profile": view})
}

// UpdateDietProfile handles PUT /api/diet-profile
// @Summary Update diet profile
// @Description Apply any subset of diet_types and notes
// @Tags Profiles
// @Accept json
// @Produce json
// @Param body body updateDietProfileRequest true "Fields to update"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /diet-profile [put]
func (h *ProfileHandler) UpdateDietProfile(c *fiber.Ctx) error {
	var req updateDietProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.UserID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "user_id is required")
	}

	view, err := services.UpdateDietProfile(h.DB, req.UserID.Uint64(), req.DietTypes, req.Notes)
	if err != nil {
		return respondError(c, "updateDietProfile", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "diet profile updated",
		fiber.Map{"profile": view})
}

// GetBudgetProfile handles GET /api/budget-profile
// @Summary Get budget profile
// @Tags Profiles
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} models.UserBudgetProfile
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /budget-profile [get]
func (h *ProfileHandler) GetBudgetProfile(c *fiber.Ctx) error {
	profile, err := services.GetBudgetProfile(h.DB, middleware.UserID(c))
	if err != nil {
		return respondError(c, "getBudgetProfile", err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// CreateBudgetProfile handles POST /api/budget-profile
// @Summary Create budget profile
// @Description Store a user's weekly budget; creating twice conflicts
// @Tags Profiles
// @Accept json
// @Produce json
// @Param body body createBudgetProfileRequest true "Profile to create"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /budget-profile [post]
func (h *ProfileHandler) CreateBudgetProfile(c *fiber.Ctx) error {
	var req createBudgetProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.UserID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "user_id is required")
	}
	if req.WeeklyBudgetAmount == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "weekly_budget_amount is required")
	}

	profile, err := services.CreateBudgetProfile(h.DB, req.UserID.Uint64(),
		*req.WeeklyBudgetAmount, req.Currency)
	if err != nil {
		return respondError(c, "createBudgetProfile", err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "budget profile created",
		fiber.Map{"profile": profile})
}

// UpdateBudgetProfile handles PUT /api/budget-profile
// @Summary Update budget profile
// @Description Apply any subset of weekly_budget_amount and currency
// @Tags Profiles
// @Accept json
// @Produce json
// @Param body body updateBudgetProfileRequest true "Fields to update"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /budget-profile [put]
func (h *ProfileHandler) UpdateBudgetProfile(c *fiber.Ctx) error {
	var req updateBudgetProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.UserID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "user_id is required")
	}

	profile, err := services.UpdateBudgetProfile(h.DB, req.UserID.Uint64(),
		req.WeeklyBudgetAmount, req.Currency)
	if err != nil {
		return respondError(c, "updateBudgetProfile", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "budget profile updated",
		fiber.Map{"profile": profile})
}
