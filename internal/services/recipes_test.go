package services

import (
	"testing"

	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/types"
)

// TestCreateAndGetRecipe tests recipe creation with ingredient requirements
func TestCreateAndGetRecipe(t *testing.T) {
	db := setupTestDB(t)
	ingA := seedIngredient(t, db, "Produce")
	ingB := seedIngredient(t, db, "Dairy")

	recipe, err := CreateRecipe(db, RecipeInput{
		Name:            "Stir Fry",
		PrepTimeMinutes: "20",
		DifficultyLevel: "Easy",
		Instructions:    "Fry everything.",
		Ingredients: []RecipeIngredientInput{
			{IngredientID: ingA, RequiredQuantity: 2, Unit: "cup"},
			{IngredientID: ingB, RequiredQuantity: 0.5, Unit: "cup"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if recipe.Status != models.RecipeStatusActive {
		t.Errorf("Expected Active status, got %s", recipe.Status)
	}

	detail, err := GetRecipe(db, recipe.RecipeID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(detail.Ingredients) != 2 {
		t.Fatalf("Expected 2 ingredients, got %d", len(detail.Ingredients))
	}
	if detail.Ingredients[0].CategoryName == nil {
		t.Error("Expected joined category name")
	}

	_, err = CreateRecipe(db, RecipeInput{})
	if !types.IsValidation(err) {
		t.Errorf("Expected validation error for missing name, got %v", err)
	}

	_, err = GetRecipe(db, 9999)
	if !types.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
}

// TestListRecipesCounts tests the ingredient-count aggregation and the
// status, difficulty and category filters
func TestListRecipesCounts(t *testing.T) {
	db := setupTestDB(t)
	ing := seedIngredient(t, db, "Produce")

	active, err := CreateRecipe(db, RecipeInput{
		Name:            "Soup",
		DifficultyLevel: "Easy",
		Ingredients: []RecipeIngredientInput{
			{IngredientID: ing, RequiredQuantity: 1, Unit: "cup"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := DeactivateRecipe(db, seedRecipe(t, db, "Retired")); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	rows, err := ListRecipes(db, RecipeFilter{Status: models.RecipeStatusActive})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 active recipe, got %d", len(rows))
	}
	if rows[0].RecipeID != active.RecipeID || rows[0].IngredientCount != 1 {
		t.Errorf("Unexpected summary row: %+v", rows[0])
	}

	all, err := ListRecipes(db, RecipeFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 recipes without filters, got %d", len(all))
	}

	var cat models.Category
	if err := db.Where("category_name = ?", "Produce").First(&cat).Error; err != nil {
		t.Fatalf("Lookup category failed: %v", err)
	}
	byCat, err := ListRecipes(db, RecipeFilter{CategoryID: cat.CategoryID, Difficulty: "Easy"})
	if err != nil {
		t.Fatalf("Filtered list failed: %v", err)
	}
	if len(byCat) != 1 || byCat[0].RecipeID != active.RecipeID {
		t.Errorf("Expected only the soup for category filter, got %+v", byCat)
	}

	none, err := ListRecipes(db, RecipeFilter{Difficulty: "Expert"})
	if err != nil {
		t.Fatalf("Filtered list failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no expert recipes, got %d", len(none))
	}
}

// TestUpdateRecipeStampsTime tests column updates and the not-found path
func TestUpdateRecipeStampsTime(t *testing.T) {
	db := setupTestDB(t)
	recipeID := seedRecipe(t, db, "Old Name")

	err := UpdateRecipe(db, recipeID, map[string]interface{}{"name": "New Name"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var got models.Recipe
	db.Where("recipe_id = ?", recipeID).First(&got)
	if got.Name != "New Name" {
		t.Errorf("Expected renamed recipe, got %s", got.Name)
	}

	if err := UpdateRecipe(db, 9999, map[string]interface{}{"name": "x"}); !types.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
	if err := UpdateRecipe(db, recipeID, map[string]interface{}{}); !types.IsValidation(err) {
		t.Errorf("Expected validation error for empty update, got %v", err)
	}
}

// TestSuggestRecipesRanksByOverlap tests inventory-overlap ranking and the
// unexpired filter
func TestSuggestRecipesRanksByOverlap(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "suggest@example.com")
	ingA := seedIngredient(t, db, "Produce")
	ingB := seedIngredient(t, db, "Dairy")
	ingC := seedIngredient(t, db, "Grains")

	twoMatch, err := CreateRecipe(db, RecipeInput{
		Name:            "Both In Stock",
		PrepTimeMinutes: "45",
		Ingredients: []RecipeIngredientInput{
			{IngredientID: ingA, RequiredQuantity: 1, Unit: "cup"},
			{IngredientID: ingB, RequiredQuantity: 1, Unit: "cup"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := CreateRecipe(db, RecipeInput{
		Name:            "One In Stock",
		PrepTimeMinutes: "15",
		Ingredients: []RecipeIngredientInput{
			{IngredientID: ingA, RequiredQuantity: 1, Unit: "cup"},
			{IngredientID: ingC, RequiredQuantity: 1, Unit: "cup"},
		},
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := CreateRecipe(db, RecipeInput{
		Name: "Nothing In Stock",
		Ingredients: []RecipeIngredientInput{
			{IngredientID: ingC, RequiredQuantity: 1, Unit: "cup"},
		},
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// ingA fresh, ingB fresh, ingC expired (held but unusable).
	fresh := types.Today().AddDays(5)
	expired := types.Today().AddDays(-1)
	for _, row := range []models.InventoryItem{
		{UserID: userID, IngredientID: ingA, AddedDate: types.Today(),
			Quantity: 1, Unit: "kg", ExpirationDate: &fresh, Status: "ok"},
		{UserID: userID, IngredientID: ingB, AddedDate: types.Today(),
			Quantity: 1, Unit: "l", ExpirationDate: &fresh, Status: "ok"},
		{UserID: userID, IngredientID: ingC, AddedDate: types.Today(),
			Quantity: 1, Unit: "g", ExpirationDate: &expired, Status: "ok"},
	} {
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("Failed to seed inventory: %v", err)
		}
	}

	rows, err := SuggestRecipes(db, userID, nil, 10)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 suggestions, got %d", len(rows))
	}
	if rows[0].RecipeID != twoMatch.RecipeID || rows[0].MatchCount != 2 {
		t.Errorf("Expected best match first, got %+v", rows[0])
	}
	if rows[1].MatchCount != 1 {
		t.Errorf("Expected one-match recipe second, got %+v", rows[1])
	}

	// A prep-time cap drops the slower recipe.
	maxPrep := 30
	rows, err = SuggestRecipes(db, userID, &maxPrep, 10)
	if err != nil {
		t.Fatalf("Suggest with cap failed: %v", err)
	}
	if len(rows) != 1 || rows[0].PrepTimeMinutes != "15" {
		t.Errorf("Expected only the quick recipe, got %+v", rows)
	}
}

// TestFavorites tests the favorite lifecycle including the duplicate
// conflict
func TestFavorites(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "fav@example.com")
	recipeID := seedRecipe(t, db, "Soup")

	if err := AddFavorite(db, userID, recipeID); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := AddFavorite(db, userID, recipeID); !types.IsConflict(err) {
		t.Errorf("Expected conflict for duplicate favorite, got %v", err)
	}
	if err := AddFavorite(db, userID, 9999); !types.IsNotFound(err) {
		t.Errorf("Expected not found for missing recipe, got %v", err)
	}

	rows, err := ListFavorites(db, userID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 1 || rows[0].RecipeID != recipeID {
		t.Errorf("Unexpected favorites: %+v", rows)
	}

	if err := RemoveFavorite(db, userID, recipeID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := RemoveFavorite(db, userID, recipeID); !types.IsNotFound(err) {
		t.Errorf("Expected not found on second remove, got %v", err)
	}
}
