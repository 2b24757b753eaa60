// mealplans.go
//
// MealMind API - meal planning and food waste tracking data service

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mealmind/mealmind-api/internal/middleware"
	"github.com/mealmind/mealmind-api/internal/services"
	"github.com/mealmind/mealmind-api/internal/types"
	"github.com/mealmind/mealmind-api/internal/utils"
)

// MealPlanHandler handles meal plan routes
type MealPlanHandler struct {
	Generator *services.PlanGenerator
}

type createPlanRequest struct {
	UserID      types.FlexInt                           `json:"user_id"`
	StartDate   types.FlexDate                          `json:"start_date"`
	EndDate     types.FlexDate                          `json:"end_date"`
	MealsPerDay types.FlexInt                           `json:"meals_per_day"`
	MealTypes   []string                                `json:"meal_types"`
	IsSaved     *bool                                   `json:"is_saved"`
	Entries     types.FlexList[services.PlanEntryInput] `json:"entries"`
}

// CreatePlan handles POST /api/meal-plans
// @Summary Create meal plan
// @Description Generate and store a meal plan; unassigned slots get a random active recipe
// @Tags MealPlans
// @Accept json
// @Produce json
// @Param body body createPlanRequest true "Plan parameters"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /meal-plans [post]
func (h *MealPlanHandler) CreatePlan(c *fiber.Ctx) error {
	var req createPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.UserID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "user_id is required")
	}

	planID, err := h.Generator.Create(services.CreatePlanInput{
		UserID:      req.UserID.Uint64(),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MealsPerDay: req.MealsPerDay.Int(),
		MealTypes:   req.MealTypes,
		IsSaved:     req.IsSaved,
		Entries:     req.Entries,
	})
	if err != nil {
		return respondError(c, "createPlan", err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "meal plan created",
		fiber.Map{"meal_plan_id": planID})
}

// ListPlans handles GET /api/meal-plans
// @Summary List meal plans
// @Description Get a user's meal plan headers, most recent first
// @Tags MealPlans
// @Produce json
// @Param user_id query int true "User ID"
// @Param current_only query bool false "Only plans covering today"
// @Success 200 {array} models.MealPlan
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /meal-plans [get]
func (h *MealPlanHandler) ListPlans(c *fiber.Ctx) error {
	currentOnly := c.QueryBool("current_only", false)
	plans, err := services.ListMealPlans(h.Generator.DB(), middleware.UserID(c), currentOnly)
	if err != nil {
		return respondError(c, "listPlans", err)
	}
	return c.Status(fiber.StatusOK).JSON(plans)
}

// GetPlan handles GET /api/meal-plans/:planId
// @Summary Get meal plan
// @Description Get one meal plan with its entries and resolved recipe names
// @Tags MealPlans
// @Produce json
// @Param user_id query int true "User ID"
// @Param planId path int true "Meal plan ID"
// @Success 200 {object} services.PlanDetail
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /meal-plans/{planId} [get]
func (h *MealPlanHandler) GetPlan(c *fiber.Ctx) error {
	planID, err := paramID(c, "planId")
	if err != nil {
		return respondError(c, "getPlan", err)
	}

	detail, err := services.GetMealPlan(h.Generator.DB(), middleware.UserID(c), planID)
	if err != nil {
		return respondError(c, "getPlan", err)
	}
	return c.Status(fiber.StatusOK).JSON(detail)
}

// DeletePlan handles DELETE /api/meal-plans/:planId
// @Summary Delete meal plan
// @Description Remove a meal plan and all its entries
// @Tags MealPlans
// @Produce json
// @Param user_id query int true "User ID"
// @Param planId path int true "Meal plan ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /meal-plans/{planId} [delete]
func (h *MealPlanHandler) DeletePlan(c *fiber.Ctx) error {
	planID, err := paramID(c, "planId")
	if err != nil {
		return respondError(c, "deletePlan", err)
	}

	if err := services.DeleteMealPlan(h.Generator.DB(), middleware.UserID(c), planID); err != nil {
		return respondError(c, "deletePlan", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "meal plan deleted", nil)
}
