package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mealmind/mealmind-api/internal/middleware"
	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/services"
	"gorm.io/gorm"
)

func mealPlanApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	handler := &MealPlanHandler{Generator: services.NewPlanGenerator(db, 1)}
	app.Get("/api/meal-plans", middleware.RequireUser(), handler.ListPlans)
	app.Post("/api/meal-plans", handler.CreatePlan)
	app.Get("/api/meal-plans/:planId", middleware.RequireUser(), handler.GetPlan)
	app.Delete("/api/meal-plans/:planId", middleware.RequireUser(), handler.DeletePlan)
	return app
}

// TestCreateAndGetPlanEndpoint tests the full create/read round trip
func TestCreateAndGetPlanEndpoint(t *testing.T) {
	db := setupTestDB(t)
	user := models.User{Email: "plans@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	recipe := models.Recipe{Name: "Soup", Status: models.RecipeStatusActive}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("Failed to seed recipe: %v", err)
	}

	app := mealPlanApp(db)

	body, _ := json.Marshal(fiber.Map{
		"user_id":       1,
		"start_date":    "2026-04-06",
		"end_date":      "2026-04-07",
		"meals_per_day": 2,
	})
	req := httptest.NewRequest("POST", "/api/meal-plans", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	var created map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	planID, ok := created["meal_plan_id"].(float64)
	if !ok || planID == 0 {
		t.Fatalf("Expected meal_plan_id in response, got %+v", created)
	}

	req = httptest.NewRequest("GET",
		fmt.Sprintf("/api/meal-plans/%d?user_id=1", int(planID)), nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var detail struct {
		Plan    models.MealPlan
		Entries []map[string]interface{}
	}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	// 2 days x 2 meals.
	if len(detail.Entries) != 4 {
		t.Errorf("Expected 4 entries, got %d", len(detail.Entries))
	}
}

// TestGetPlanOwnershipEndpoint tests that another user's plan reads as 404
func TestGetPlanOwnershipEndpoint(t *testing.T) {
	db := setupTestDB(t)
	for _, email := range []string{"owner@example.com", "other@example.com"} {
		u := models.User{Email: email}
		if err := db.Create(&u).Error; err != nil {
			t.Fatalf("Failed to seed user: %v", err)
		}
	}

	app := mealPlanApp(db)

	body, _ := json.Marshal(fiber.Map{"user_id": 1, "start_date": "2026-04-06"})
	req := httptest.NewRequest("POST", "/api/meal-plans", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("GET", "/api/meal-plans/1?user_id=2", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected 404 for foreign plan, got %d", resp.StatusCode)
	}
}

// TestCreatePlanBadRangeEndpoint tests the 400 path for inverted ranges
func TestCreatePlanBadRangeEndpoint(t *testing.T) {
	db := setupTestDB(t)
	user := models.User{Email: "bad@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	app := mealPlanApp(db)

	body, _ := json.Marshal(fiber.Map{
		"user_id":    1,
		"start_date": "2026-04-06",
		"end_date":   "2026-04-01",
	})
	req := httptest.NewRequest("POST", "/api/meal-plans", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
}
