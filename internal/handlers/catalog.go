// catalog.go
//
// MealMind API - meal planning and food waste tracking data service

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mealmind/mealmind-api/internal/services"
	"github.com/mealmind/mealmind-api/internal/types"
	"github.com/mealmind/mealmind-api/internal/utils"
	"gorm.io/gorm"
)

// CatalogHandler handles category and ingredient routes
type CatalogHandler struct {
	DB *gorm.DB
}

type createCategoryRequest struct {
	CategoryName string `json:"category_name"`
}

type ingredientRequest struct {
	IngredientID types.FlexInt  `json:"ingredient_id"`
	CategoryID   *types.FlexInt `json:"category_id"`
	CategoryName string         `json:"category_name"`
}

// ListCategories handles GET /api/categories
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	cats, err := services.ListCategories(h.DB)
	if err != nil {
		return respondError(c, "listCategories", err)
	}
	return c.Status(fiber.StatusOK).JSON(cats)
}

// CreateCategory handles POST /api/categories
// @Summary Create category
// @Description Add a category; an existing name returns the existing row
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body createCategoryRequest true "Category to create"
// @Success 200 {object} utils.MessageResponseStruct
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req createCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	cat, existed, err := services.CreateCategory(h.DB, req.CategoryName)
	if err != nil {
		return respondError(c, "createCategory", err)
	}

	status := fiber.StatusCreated
	message := "category created"
	if existed {
		status = fiber.StatusOK
		message = "category already exists"
	}
	return utils.MessageResponse(c, status, message, fiber.Map{"category": cat})
}

// ListIngredients handles GET /api/ingredients
// @Summary List ingredients
// @Tags Catalog
// @Produce json
// @Param category_id query int false "Filter by category"
// @Success 200 {array} services.IngredientRow
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /ingredients [get]
func (h *CatalogHandler) ListIngredients(c *fiber.Ctx) error {
	rows, err := services.ListIngredients(h.DB, uint64(c.QueryInt("category_id", 0)))
	if err != nil {
		return respondError(c, "listIngredients", err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// CreateIngredient handles POST /api/ingredients
// @Summary Create ingredient
// @Description Register an ingredient, optionally under an existing or new category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body ingredientRequest true "Ingredient to create"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /ingredients [post]
func (h *CatalogHandler) CreateIngredient(c *fiber.Ctx) error {
	var req ingredientRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	in := services.IngredientInput{
		IngredientID: req.IngredientID.Uint64(),
		CategoryName: req.CategoryName,
	}
	if req.CategoryID != nil {
		id := req.CategoryID.Uint64()
		in.CategoryID = &id
	}

	ing, err := services.CreateIngredient(h.DB, in)
	if err != nil {
		return respondError(c, "createIngredient", err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "ingredient created",
		fiber.Map{"ingredient_id": ing.IngredientID})
}

// UpdateIngredient handles PUT /api/ingredients/:ingredientId
// @Summary Update ingredient
// @Description Reassign an ingredient's category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param ingredientId path int true "Ingredient ID"
// @Param body body ingredientRequest true "Fields to update"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /ingredients/{ingredientId} [put]
func (h *CatalogHandler) UpdateIngredient(c *fiber.Ctx) error {
	ingredientID, err := paramID(c, "ingredientId")
	if err != nil {
		return respondError(c, "updateIngredient", err)
	}

	var req ingredientRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	var categoryID *uint64
	if req.CategoryID != nil {
		id := req.CategoryID.Uint64()
		categoryID = &id
	}
	if categoryID == nil && req.CategoryName == "" {
		return utils.MessageResponse(c, fiber.StatusOK, "no fields updated", nil)
	}

	if err := services.UpdateIngredient(h.DB, ingredientID, categoryID, req.CategoryName); err != nil {
		return respondError(c, "updateIngredient", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "ingredient updated", nil)
}

// DeleteIngredient handles DELETE /api/ingredients/:ingredientId
// @Summary Delete ingredient
// @Tags Catalog
// @Produce json
// @Param ingredientId path int true "Ingredient ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /ingredients/{ingredientId} [delete]
func (h *CatalogHandler) DeleteIngredient(c *fiber.Ctx) error {
	ingredientID, err := paramID(c, "ingredientId")
	if err != nil {
		return respondError(c, "deleteIngredient", err)
	}

	if err := services.DeleteIngredient(h.DB, ingredientID); err != nil {
		return respondError(c, "deleteIngredient", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "ingredient deleted", nil)
}
