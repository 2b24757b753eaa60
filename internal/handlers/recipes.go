// recipes.go
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

// RecipeHandler handles recipe, suggestion and favorite routes
type RecipeHandler struct {
	DB *gorm.DB
}

type createRecipeRequest struct {
	Name            string                                         `json:"name"`
	PrepTimeMinutes types.FlexString                               `json:"prep_time_minutes"`
	DifficultyLevel string                                         `json:"difficulty_level"`
	Instructions    string                                         `json:"instructions"`
	Status          string                                         `json:"status"`
	Ingredients     types.FlexList[services.RecipeIngredientInput] `json:"ingredients"`
}

type addFavoriteRequest struct {
	UserID   types.FlexInt `json:"user_id"`
	RecipeID types.FlexInt `json:"recipe_id"`
}

type updateRecipeRequest struct {
	Name            *string           `json:"name"`
	PrepTimeMinutes *types.FlexString `json:"prep_time_minutes"`
	DifficultyLevel *string           `json:"difficulty_level"`
	Instructions    *string           `json:"instructions"`
	Status          *string           `json:"status"`
}

// ListRecipes handles GET /api/recipes
// @Summary List recipes
// @Description Get recipe summaries with ingredient counts
// @Tags Recipes
// @Produce json
// @Param category_id query int false "Only recipes using ingredients from this category"
// @Param difficulty query string false "Filter by difficulty level"
// @Param status query string false "Filter by status (Active, Inactive)"
// @Success 200 {array} services.RecipeSummary
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c *fiber.Ctx) error {
	rows, err := services.ListRecipes(h.DB, services.RecipeFilter{
		CategoryID: uint64(c.QueryInt("category_id", 0)),
		Difficulty: c.Query("difficulty"),
		Status:     c.Query("status"),
	})
	if err != nil {
		return respondError(c, "listRecipes", err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// CreateRecipe handles POST /api/recipes
// @Summary Create recipe
// @Description Store a recipe and its ingredient requirements
// @Tags Recipes
// @Accept json
// @Produce json
// @Param body body createRecipeRequest true "Recipe to create"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *fiber.Ctx) error {
	var req createRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	recipe, err := services.CreateRecipe(h.DB, services.RecipeInput{
		Name:            req.Name,
		PrepTimeMinutes: req.PrepTimeMinutes.String(),
		DifficultyLevel: req.DifficultyLevel,
		Instructions:    req.Instructions,
		Status:          req.Status,
		Ingredients:     req.Ingredients,
	})
	if err != nil {
		return respondError(c, "createRecipe", err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "recipe created",
		fiber.Map{"recipe_id": recipe.RecipeID})
}

// GetRecipe handles GET /api/recipes/:recipeId
// @Summary Get recipe
// @Description Get one recipe with its ingredient list
// @Tags Recipes
// @Produce json
// @Param recipeId path int true "Recipe ID"
// @Success 200 {object} services.RecipeDetail
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /recipes/{recipeId} [get]
func (h *RecipeHandler) GetRecipe(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "recipeId")
	if err != nil {
		return respondError(c, "getRecipe", err)
	}

	detail, err := services.GetRecipe(h.DB, recipeID)
	if err != nil {
		return respondError(c, "getRecipe", err)
	}
	return c.Status(fiber.StatusOK).JSON(detail)
}

// UpdateRecipe handles PUT /api/recipes/:recipeId
// @Summary Update recipe
// @Description Update recipe fields; the last update time is stamped automatically
// @Tags Recipes
// @Accept json
// @Produce json
// @Param recipeId path int true "Recipe ID"
// @Param body body updateRecipeRequest true "Fields to update"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /recipes/{recipeId} [put]
func (h *RecipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "recipeId")
	if err != nil {
		return respondError(c, "updateRecipe", err)
	}

	var req updateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PrepTimeMinutes != nil {
		updates["prep_time_minutes"] = req.PrepTimeMinutes.String()
	}
	if req.DifficultyLevel != nil {
		updates["difficulty_level"] = *req.DifficultyLevel
	}
	if req.Instructions != nil {
		updates["instructions"] = *req.Instructions
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if err := services.UpdateRecipe(h.DB, recipeID, updates); err != nil {
		return respondError(c, "updateRecipe", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "recipe updated", nil)
}

// DeleteRecipe handles DELETE /api/recipes/:recipeId
// @Summary Deactivate recipe
// @Description Soft-delete a recipe by marking it inactive
// @Tags Recipes
// @Produce json
// @Param recipeId path int true "Recipe ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /recipes/{recipeId} [delete]
func (h *RecipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "recipeId")
	if err != nil {
		return respondError(c, "deleteRecipe", err)
	}

	if err := services.DeactivateRecipe(h.DB, recipeID); err != nil {
		return respondError(c, "deleteRecipe", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "recipe deactivated", nil)
}

// SuggestRecipes handles GET /api/recipes/suggestions
// @Summary Suggest recipes
// @Description Rank active recipes by overlap with the user's unexpired inventory
// @Tags Recipes
// @Produce json
// @Param user_id query int true "User ID"
// @Param max_prep_time query int false "Maximum prep time in minutes"
// @Param limit query int false "Maximum suggestions (default 10)"
// @Success 200 {array} services.SuggestionRow
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /recipes/suggestions [get]
func (h *RecipeHandler) SuggestRecipes(c *fiber.Ctx) error {
	var maxPrepTime *int
	if c.Query("max_prep_time") != "" {
		v := c.QueryInt("max_prep_time")
		maxPrepTime = &v
	}
	rows, err := services.SuggestRecipes(h.DB, middleware.UserID(c), maxPrepTime,
		c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, "suggestRecipes", err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// ListFavorites handles GET /api/favorite-recipes
// @Summary List favorites
// @Description Get a user's favorite recipes, most recently favorited first
// @Tags Favorites
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} services.FavoriteRow
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /favorite-recipes [get]
func (h *RecipeHandler) ListFavorites(c *fiber.Ctx) error {
	rows, err := services.ListFavorites(h.DB, middleware.UserID(c))
	if err != nil {
		return respondError(c, "listFavorites", err)
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// AddFavorite handles POST /api/favorite-recipes
// @Summary Add favorite
// @Description Mark a recipe as a user favorite
// @Tags Favorites
// @Accept json
// @Produce json
// @Param body body addFavoriteRequest true "Favorite to add"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /favorite-recipes [post]
func (h *RecipeHandler) AddFavorite(c *fiber.Ctx) error {
	var req addFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.UserID.Uint64() == 0 || req.RecipeID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "user_id and recipe_id are required")
	}

	if err := services.AddFavorite(h.DB, req.UserID.Uint64(), req.RecipeID.Uint64()); err != nil {
		return respondError(c, "addFavorite", err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "favorite added", nil)
}

// RemoveFavorite handles DELETE /api/favorite-recipes/:recipeId
// @Summary Remove favorite
// @Description Unmark a recipe as a user favorite
// @Tags Favorites
// @Produce json
// @Param user_id query int true "User ID"
// @Param recipeId path int true "Recipe ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /favorite-recipes/{recipeId} [delete]
func (h *RecipeHandler) RemoveFavorite(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "recipeId")
	if err != nil {
		return respondError(c, "removeFavorite", err)
	}

	if err := services.RemoveFavorite(h.DB, middleware.UserID(c), recipeID); err != nil {
		return respondError(c, "removeFavorite", err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "favorite removed", nil)
}
