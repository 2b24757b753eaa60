package models

import (
	"time"

	"github.com/mealmind/mealmind-api/internal/types"
)

// Category groups ingredients. Deduplicated by name on creation.
type Category struct {
	CategoryID   uint64 `gorm:"primaryKey;autoIncrement"`
	CategoryName string `gorm:"uniqueIndex;size:255;not null"`
}

// Ingredient is a purchasable food item. It carries no display name of its
// own in the source schema, only a category reference, which may be null.
type Ingredient struct {
	IngredientID uint64  `gorm:"primaryKey;autoIncrement"`
	CategoryID   *uint64 `gorm:"index"`
}

// Recipe statuses. Deletion is a soft transition to Inactive; Inactive
// recipes are excluded from suggestions and meal plan generation and can be
// restored by an update.
const (
	RecipeStatusActive   = "Active"
	RecipeStatusInactive = "Inactive"
)

// Recipe is a preparable dish. PrepTimeMinutes is stored as text to match
// the upstream data, which mixes numeric strings from several sources.
type Recipe struct {
	RecipeID        uint64 `gorm:"primaryKey;autoIncrement"`
	Name            string `gorm:"size:255;not null"`
	PrepTimeMinutes string `gorm:"size:16"`
	DifficultyLevel string `gorm:"size:32"`
	Instructions    string `gorm:"type:text"`
	Status          string `gorm:"size:16;not null;default:Active"`
	CreatedAt       time.Time
	LastUpdateAt    time.Time `gorm:"autoUpdateTime"`
}

// RecipeIngredient is the bridge defining what a recipe consumes.
type RecipeIngredient struct {
	RecipeID         uint64  `gorm:"primaryKey;autoIncrement:false"`
	IngredientID     uint64  `gorm:"primaryKey;autoIncrement:false"`
	RequiredQuantity float64 `gorm:"not null"`
	Unit             string  `gorm:"size:32;not null"`
}

// FavoriteRecipe is a simple (user, recipe) membership set.
type FavoriteRecipe struct {
	UserID        uint64         `gorm:"primaryKey;autoIncrement:false"`
	RecipeID      uint64         `gorm:"primaryKey;autoIncrement:false"`
	FavoritedDate types.FlexDate `gorm:"size:10;not null"`
}

// User is a registered account. Personas in the dashboard are plain user
// rows; identity reaches the API as an explicit request parameter.
type User struct {
	UserID uint64 `gorm:"primaryKey;autoIncrement"`
	Email  string `gorm:"uniqueIndex;size:255;not null"`
	FName  string `gorm:"size:128"`
	LName  string `gorm:"size:128"`
	Region string `gorm:"size:128"`
	Age    int
}

// TableName overrides the table name for Category
func (Category) TableName() string {
	return "categories"
}

// TableName overrides the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredients"
}

// TableName overrides the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// TableName overrides the table name for RecipeIngredient
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// TableName overrides the table name for FavoriteRecipe
func (FavoriteRecipe) TableName() string {
	return "favorite_recipes"
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
