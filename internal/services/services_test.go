package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mealmind/mealmind-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Category{},
		&models.Ingredient{},
		&models.User{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.FavoriteRecipe{},
		&models.InventoryItem{},
		&models.MealPlan{},
		&models.MealPlanEntry{},
		&models.UserDietProfile{},
		&models.UserBudgetProfile{},
		&models.TimePeriod{},
		&models.DemographicSegment{},
		&models.WasteStatistic{},
		&models.RecipeUsageStatistic{},
		&models.SystemMetric{},
		&models.MetricSnapshot{},
		&models.SystemAlert{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// seedUser creates one user and returns its id.
func seedUser(t *testing.T, db *gorm.DB, email string) uint64 {
	t.Helper()
	user := models.User{Email: email, FName: "Test", LName: "User"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user.UserID
}

// seedIngredient creates one ingredient (with a category) and returns its id.
func seedIngredient(t *testing.T, db *gorm.DB, categoryName string) uint64 {
	t.Helper()
	var cat models.Category
	if err := db.Where(models.Category{CategoryName: categoryName}).
		FirstOrCreate(&cat).Error; err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
	ing := models.Ingredient{CategoryID: &cat.CategoryID}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("Failed to seed ingredient: %v", err)
	}
	return ing.IngredientID
}

// seedRecipe creates one active recipe and returns its id.
func seedRecipe(t *testing.T, db *gorm.DB, name string) uint64 {
	t.Helper()
	recipe := models.Recipe{Name: name, Status: models.RecipeStatusActive}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("Failed to seed recipe: %v", err)
	}
	return recipe.RecipeID
}
