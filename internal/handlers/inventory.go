// inventory.go
//
// MealMind API - meal planning and food waste tracking data service

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mealmind/mealmind-api/internal/middleware"
	"github.com/mealmind/mealmind-api/internal/services"
	"github.com/mealmind/mealmind-api/internal/types"
	"github.com/mealmind/mealmind-api/internal/utils"
	"gorm.io/gorm"
)

// InventoryHandler handles inventory routes
type InventoryHandler struct {
	DB *gorm.DB
}

type addInventoryRequest struct {
	UserID         types.FlexInt   `json:"user_id"`
	IngredientID   types.FlexInt   `json:"ingredient_id"`
	Quantity       float64         `json:"quantity"`
	Unit           string          `json:"unit"`
	ExpirationDate *types.FlexDate `json:"expiration_date"`
	Status         string          `json:"status"`
}

type updateInventoryRequest struct {
	Quantity       *float64        `json:"quantity"`
	Unit           *string         `json:"unit"`
	ExpirationDate *types.FlexDate `json:"expiration_date"`
	Status         *string         `json:"status"`
}

// ListInventory handles GET /api/inventory-items
// @Summary List inventory
// @Description Get all inventory items for a user with ingredient and category details
// @Tags Inventory
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} services.InventoryRow
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /inventory-items [get]
func (h *InventoryHandler) ListInventory(c *fiber.Ctx) error {
	rows, err := services.ListInventory(h.DB, middleware.UserID(c))
	if err != nil {
		return respondError(c, "listInventory", err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// AddInventory handles POST /api/inventory-items
// @Summary Add inventory
// @Description Add stock for an ingredient; a same-day row for the ingredient accumulates the quantity
// @Tags Inventory
// @Accept json
// @Produce json
// @Param body body addInventoryRequest true "Item to add"
// @Success 200 {object} utils.MessageResponseStruct
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /inventory-items [post]
func (h *InventoryHandler) AddInventory(c *fiber.Ctx) error {
	var req addInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.UserID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "user_id is required")
	}
	if req.IngredientID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "ingredient_id is required")
	}

	item, merged, err := services.AddInventoryItem(h.DB, services.AddItemInput{
		UserID:         req.UserID.Uint64(),
		IngredientID:   req.IngredientID.Uint64(),
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		ExpirationDate: req.ExpirationDate,
		Status:         req.Status,
	})
	if err != nil {
		return respondError(c, "addInventory", err)
	}

	status := fiber.StatusCreated
	message := "inventory item added"
	if merged {
		status = fiber.StatusOK
		message = "inventory item quantity updated"
	}
	return utils.MessageResponse(c, status, message, fiber.Map{"item": item})
}

// UpdateInventory handles PUT /api/inventory-items/:ingredientId
// @Summary Update inventory item
// @Description Update fields of one inventory row identified by ingredient and added date
// @Tags Inventory
// @Accept json
// @Produce json
// @Param user_id query int true "User ID"
// @Param ingredientId path int true "Ingredient ID"
// @Param added_date query string true "Added date (YYYY-MM-DD)"
// @Param body body updateInventoryRequest true "Fields to update"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /inventory-items/{ingredientId} [put]
func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	ingredientID, err := paramID(c, "ingredientId")
	if err != nil {
		return respondError(c, "updateInventory", err)
	}
	addedDate := c.Query("added_date")
	if addedDate == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "added_date is required")
	}

	var req updateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "quantity must be positive")
		}
		updates["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.ExpirationDate != nil {
		updates["expiration_date"] = *req.ExpirationDate
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	err = services.UpdateInventoryItem(h.DB, middleware.UserID(c), ingredientID,
		addedDate, updates)
	if err != nil {
		return respondError(c, "updateInventory", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "inventory item updated", nil)
}

// DeleteInventory handles DELETE /api/inventory-items/:ingredientId
// @Summary Delete inventory item
// @Description Remove one inventory row identified by ingredient and added date
// @Tags Inventory
// @Produce json
// @Param user_id query int true "User ID"
// @Param ingredientId path int true "Ingredient ID"
// @Param added_date query string true "Added date (YYYY-MM-DD)"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /inventory-items/{ingredientId} [delete]
func (h *InventoryHandler) DeleteInventory(c *fiber.Ctx) error {
	ingredientID, err := paramID(c, "ingredientId")
	if err != nil {
		return respondError(c, "deleteInventory", err)
	}
	addedDate := c.Query("added_date")
	if addedDate == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "added_date is required")
	}

	err = services.DeleteInventoryItem(h.DB, middleware.UserID(c), ingredientID,
		addedDate)
	if err != nil {
		return respondError(c, "deleteInventory", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "inventory item deleted", nil)
}

// ListExpiring handles GET /api/inventory-items/expiring
// @Summary List expiring inventory
// @Description Get items expiring within the window, including already-expired items
// @Tags Inventory
// @Produce json
// @Param user_id query int true "User ID"
// @Param days_ahead query int false "Window in days (default 7)"
// @Success 200 {array} services.ExpiringRow
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /inventory-items/expiring [get]
func (h *InventoryHandler) ListExpiring(c *fiber.Ctx) error {
	days := c.QueryInt("days_ahead", 7)
	if days < 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "days_ahead must not be negative")
	}

	rows, err := services.ListExpiringInventory(h.DB, middleware.UserID(c), days)
	if err != nil {
		return respondError(c, "listExpiring", err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}
