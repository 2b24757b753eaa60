// catalog.go
//
// MealMind API - meal planning and food waste tracking data service

package services

import (
	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/types"
	"gorm.io/gorm"
)

// ListCategories returns all categories ordered by name.
func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var cats []models.Category
	err := db.Order("category_name").Find(&cats).Error
	return cats, err
}

// CreateCategory adds a category by name, deduplicating on the unique name
// column. Returns the row and whether it already existed.
func CreateCategory(db *gorm.DB, name string) (models.Category, bool, error) {
	if name == "" {
		return models.Category{}, false, types.NewValidation("category_name is required")
	}
	var cat models.Category
	result := db.Where(models.Category{CategoryName: name}).FirstOrCreate(&cat)
	if result.Error != nil {
		return cat, false, result.Error
	}
	return cat, result.RowsAffected == 0, nil
}

// IngredientInput carries an ingredient create request. Either an existing
// CategoryID or a CategoryName to find-or-create may be supplied.
type IngredientInput struct {
	IngredientID uint64
	CategoryID   *uint64
	CategoryName string
}

// CreateIngredient registers an ingredient. An explicit id that already
// exists conflicts; a zero id lets the database assign one.
func CreateIngredient(db *gorm.DB, in IngredientInput) (models.Ingredient, error) {
	var ing models.Ingredient

	err := db.Transaction(func(tx *gorm.DB) error {
		catID := in.CategoryID
		if catID == nil && in.CategoryName != "" {
			var cat models.Category
			if err := tx.Where(models.Category{CategoryName: in.CategoryName}).
				FirstOrCreate(&cat).Error; err != nil {
				return err
			}
			catID = &cat.CategoryID
		}
		if catID != nil {
			var count int64
			if err := tx.Model(&models.Category{}).
				Where("category_id = ?", *catID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return types.NewNotFound("category")
			}
		}

		if in.IngredientID != 0 {
			var count int64
			if err := tx.Model(&models.Ingredient{}).
				Where("ingredient_id = ?", in.IngredientID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return types.NewConflict("ingredient already exists")
			}
		}

		ing = models.Ingredient{IngredientID: in.IngredientID, CategoryID: catID}
		return tx.Create(&ing).Error
	})
	return ing, err
}

// UpdateIngredient reassigns an ingredient's category. A category name is
// resolved to an id, creating the category when it does not exist yet.
func UpdateIngredient(db *gorm.DB, ingredientID uint64, categoryID *uint64, categoryName string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		catID := categoryID
		if catID == nil && categoryName != "" {
			var cat models.Category
			if err := tx.Where(models.Category{CategoryName: categoryName}).
				FirstOrCreate(&cat).Error; err != nil {
				return err
			}
			catID = &cat.CategoryID
		}
		if catID == nil {
			return types.NewValidation("could not resolve category")
		}
		var count int64
		if err := tx.Model(&models.Category{}).
			Where("category_id = ?", *catID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return types.NewNotFound("category")
		}

		result := tx.Model(&models.Ingredient{}).
			Where("ingredient_id = ?", ingredientID).
			Update("category_id", catID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return types.NewNotFound("ingredient")
		}
		return nil
	})
}

// DeleteIngredient removes an ingredient row.
func DeleteIngredient(db *gorm.DB, ingredientID uint64) error {
	result := db.Where("ingredient_id = ?", ingredientID).
		Delete(&models.Ingredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("ingredient")
	}
	return nil
}

// ListIngredients returns ingredients with their category names, optionally
// narrowed to one category.
func ListIngredients(db *gorm.DB, categoryID uint64) ([]IngredientRow, error) {
	q := db.Table("ingredients i").
		Select("i.ingredient_id, i.category_id, c.category_name").
		Joins("LEFT JOIN categories c ON i.category_id = c.category_id")
	if categoryID != 0 {
		q = q.Where("i.category_id = ?", categoryID)
	}
	var rows []IngredientRow
	err := q.Order("i.ingredient_id").Scan(&rows).Error
	return rows, err
}

// IngredientRow is an ingredient joined with its category name.
type IngredientRow struct {
	IngredientID uint64
	CategoryID   *uint64
	CategoryName *string
}
