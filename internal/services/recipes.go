// recipes.go
//
// MealMind API - meal planning and food waste tracking data service

package services

import (
	"strconv"
	"time"

	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/types"
	"gorm.io/gorm"
)

// RecipeSummary is a recipe header with its ingredient count for listings.
type RecipeSummary struct {
	RecipeID        uint64
	Name            string
	PrepTimeMinutes string
	DifficultyLevel string
	Status          string
	CreatedAt       time.Time
	LastUpdateAt    time.Time
	IngredientCount int
}

// RecipeFilter narrows a recipe listing. Zero values mean no filter.
type RecipeFilter struct {
	CategoryID uint64
	Difficulty string
	Status     string
}

// RecipeDetail is a full recipe with its ingredient requirements.
type RecipeDetail struct {
	Recipe      models.Recipe
	Ingredients []RecipeIngredientRow
}

// RecipeIngredientRow is one ingredient requirement of a recipe, joined with
// category metadata.
type RecipeIngredientRow struct {
	IngredientID     uint64
	RequiredQuantity float64
	Unit             string
	CategoryName     *string
}

// RecipeInput carries a recipe create request.
type RecipeInput struct {
	Name            string
	PrepTimeMinutes string
	DifficultyLevel string
	Instructions    string
	Status          string
	Ingredients     []RecipeIngredientInput
}

// RecipeIngredientInput is one ingredient requirement in a create request.
type RecipeIngredientInput struct {
	IngredientID     uint64  `json:"ingredient_id"`
	RequiredQuantity float64 `json:"required_quantity"`
	Unit             string  `json:"unit"`
}

// ListRecipes returns recipe summaries matching the filter, newest first.
func ListRecipes(db *gorm.DB, filter RecipeFilter) ([]RecipeSummary, error) {
	q := db.Table("recipes r").
		Select(`r.recipe_id, r.name, r.prep_time_minutes, r.difficulty_level, r.status,
			r.created_at, r.last_update_at, COUNT(ri.ingredient_id) AS ingredient_count`).
		Joins("LEFT JOIN recipe_ingredients ri ON r.recipe_id = ri.recipe_id")
	if filter.CategoryID != 0 {
		q = q.Where(`r.recipe_id IN (
			SELECT ri2.recipe_id FROM recipe_ingredients ri2
			JOIN ingredients i2 ON ri2.ingredient_id = i2.ingredient_id
			WHERE i2.category_id = ?)`, filter.CategoryID)
	}
	if filter.Difficulty != "" {
		q = q.Where("r.difficulty_level = ?", filter.Difficulty)
	}
	if filter.Status != "" {
		q = q.Where("r.status = ?", filter.Status)
	}
	var rows []RecipeSummary
	err := q.Group("r.recipe_id, r.name, r.prep_time_minutes, r.difficulty_level, r.status, r.created_at, r.last_update_at").
		Order("r.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// CreateRecipe stores a recipe and its ingredient requirements in one
// transaction.
func CreateRecipe(db *gorm.DB, in RecipeInput) (models.Recipe, error) {
	if in.Name == "" {
		return models.Recipe{}, types.NewValidation("name is required")
	}
	status := in.Status
	if status == "" {
		status = models.RecipeStatusActive
	}

	recipe := models.Recipe{
		Name:            in.Name,
		PrepTimeMinutes: in.PrepTimeMinutes,
		DifficultyLevel: in.DifficultyLevel,
		Instructions:    in.Instructions,
		Status:          status,
		CreatedAt:       time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		for _, ri := range in.Ingredients {
			row := models.RecipeIngredient{
				RecipeID:         recipe.RecipeID,
				IngredientID:     ri.IngredientID,
				RequiredQuantity: ri.RequiredQuantity,
				Unit:             ri.Unit,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return recipe, err
}

// GetRecipe returns one recipe with its ingredient list.
func GetRecipe(db *gorm.DB, recipeID uint64) (RecipeDetail, error) {
	var detail RecipeDetail
	err := db.Where("recipe_id = ?", recipeID).First(&detail.Recipe).Error
	if err == gorm.ErrRecordNotFound {
		return detail, types.NewNotFound("recipe")
	}
	if err != nil {
		return detail, err
	}

	err = db.Table("recipe_ingredients ri").
		Select("ri.ingredient_id, ri.required_quantity, ri.unit, c.category_name").
		Joins("JOIN ingredients i ON ri.ingredient_id = i.ingredient_id").
		Joins("LEFT JOIN categories c ON i.category_id = c.category_id").
		Where("ri.recipe_id = ?", recipeID).
		Order("ri.ingredient_id").
		Scan(&detail.Ingredients).Error
	return detail, err
}

// UpdateRecipe applies column updates to a recipe, stamping the update time.
func UpdateRecipe(db *gorm.DB, recipeID uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return types.NewValidation("no updatable fields provided")
	}
	updates["last_update_at"] = time.Now()

	result := db.Model(&models.Recipe{}).
		Where("recipe_id = ?", recipeID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("recipe")
	}
	return nil
}

// DeactivateRecipe soft-deletes a recipe by flipping its status. The row and
// its ingredient requirements stay so existing meal plans keep resolving.
func DeactivateRecipe(db *gorm.DB, recipeID uint64) error {
	result := db.Model(&models.Recipe{}).
		Where("recipe_id = ?", recipeID).
		Updates(map[string]interface{}{
			"status":         models.RecipeStatusInactive,
			"last_update_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("recipe")
	}
	return nil
}

// SuggestionRow is a recipe ranked by how many of its ingredients the user
// already holds unexpired.
type SuggestionRow struct {
	RecipeID        uint64
	Name            string
	PrepTimeMinutes string
	DifficultyLevel string
	MatchCount      int
	TotalCount      int
}

// SuggestRecipes ranks active recipes by overlap with the user's unexpired
// inventory, best match first. Recipes with no overlap are omitted.
// maxPrepTime drops recipes whose prep time exceeds it; prep times are stored
// as text, so the comparison happens here rather than in SQL.
func SuggestRecipes(db *gorm.DB, userID uint64, maxPrepTime *int, limit int) ([]SuggestionRow, error) {
	if limit <= 0 {
		limit = 10
	}
	today := types.Today()

	var rows []SuggestionRow
	err := db.Table("recipes r").
		Select(`r.recipe_id, r.name, r.prep_time_minutes, r.difficulty_level,
			COUNT(DISTINCT ii.ingredient_id) AS match_count,
			COUNT(DISTINCT ri.ingredient_id) AS total_count`).
		Joins("JOIN recipe_ingredients ri ON r.recipe_id = ri.recipe_id").
		Joins(`LEFT JOIN inventory_items ii ON ii.ingredient_id = ri.ingredient_id
			AND ii.user_id = ?
			AND (ii.expiration_date IS NULL OR ii.expiration_date >= ?)`, userID, today).
		Where("r.status = ?", models.RecipeStatusActive).
		Group("r.recipe_id, r.name, r.prep_time_minutes, r.difficulty_level").
		Having("COUNT(DISTINCT ii.ingredient_id) > 0").
		Order("match_count DESC, r.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := rows[:0]
	for _, row := range rows {
		if maxPrepTime != nil {
			mins, err := strconv.Atoi(row.PrepTimeMinutes)
			if err != nil || mins > *maxPrepTime {
				continue
			}
		}
		out = append(out, row)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ListFavorites returns a user's favorite recipes, most recently favorited
// first.
func ListFavorites(db *gorm.DB, userID uint64) ([]FavoriteRow, error) {
	var rows []FavoriteRow
	err := db.Table("favorite_recipes f").
		Select("f.recipe_id, r.name, r.status, f.favorited_date").
		Joins("JOIN recipes r ON f.recipe_id = r.recipe_id").
		Where("f.user_id = ?", userID).
		Order("f.favorited_date DESC").
		Scan(&rows).Error
	return rows, err
}

// FavoriteRow is one favorite joined with the recipe header.
type FavoriteRow struct {
	RecipeID      uint64
	Name          string
	Status        string
	FavoritedDate types.FlexDate
}

// AddFavorite marks a recipe as a user favorite. Favoriting twice conflicts.
func AddFavorite(db *gorm.DB, userID, recipeID uint64) error {
	var count int64
	if err := db.Model(&models.Recipe{}).
		Where("recipe_id = ?", recipeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return types.NewNotFound("recipe")
	}

	if err := db.Model(&models.FavoriteRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return types.NewConflict("recipe is already a favorite")
	}

	fav := models.FavoriteRecipe{
		UserID:        userID,
		RecipeID:      recipeID,
		FavoritedDate: types.Today(),
	}
	return db.Create(&fav).Error
}

// RemoveFavorite unmarks a favorite.
func RemoveFavorite(db *gorm.DB, userID, recipeID uint64) error {
	result := db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.FavoriteRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("favorite")
	}
	return nil
}
