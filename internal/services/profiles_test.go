package services

import (
	"testing"

	"github.com/mealmind/mealmind-api/internal/types"
	"github.com/shopspring/decimal"
)

// TestDietProfileLifecycle tests create, duplicate conflict, read and update
func TestDietProfileLifecycle(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "diet@example.com")

	_, err := GetDietProfile(db, userID)
	if !types.IsNotFound(err) {
		t.Errorf("Expected not found before create, got %v", err)
	}

	created, err := CreateDietProfile(db, userID, []string{"Vegetarian", "Gluten Free"}, "no peanuts")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(created.DietTypes) != 2 {
		t.Errorf("Expected 2 diet types, got %v", created.DietTypes)
	}

	_, err = CreateDietProfile(db, userID, []string{"Vegan"}, "")
	if !types.IsConflict(err) {
		t.Errorf("Expected conflict on second create, got %v", err)
	}

	vegan := []string{"Vegan"}
	strict := "strict"
	updated, err := UpdateDietProfile(db, userID, &vegan, &strict)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(updated.DietTypes) != 1 || updated.DietTypes[0] != "Vegan" {
		t.Errorf("Expected replaced diet types, got %v", updated.DietTypes)
	}
	if updated.Notes != "strict" {
		t.Errorf("Expected updated notes, got %q", updated.Notes)
	}

	relaxed := "mostly"
	partial, err := UpdateDietProfile(db, userID, nil, &relaxed)
	if err != nil {
		t.Fatalf("Partial update failed: %v", err)
	}
	if len(partial.DietTypes) != 1 || partial.Notes != "mostly" {
		t.Errorf("Partial update must leave diet types alone, got %+v", partial)
	}

	_, err = UpdateDietProfile(db, userID, nil, nil)
	if !types.IsValidation(err) {
		t.Errorf("Expected validation error for empty update, got %v", err)
	}
}

// TestBudgetProfileLifecycle tests create, conflict, validation and update
func TestBudgetProfileLifecycle(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "budget@example.com")

	_, err := CreateBudgetProfile(db, userID, decimal.NewFromInt(-5), "USD")
	if !types.IsValidation(err) {
		t.Errorf("Expected validation error for negative budget, got %v", err)
	}

	created, err := CreateBudgetProfile(db, userID, decimal.NewFromFloat(82.50), "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Currency != "USD" {
		t.Errorf("Expected default currency USD, got %s", created.Currency)
	}

	_, err = CreateBudgetProfile(db, userID, decimal.NewFromInt(99), "EUR")
	if !types.IsConflict(err) {
		t.Errorf("Expected conflict on second create, got %v", err)
	}

	amount := decimal.NewFromInt(120)
	eur := "EUR"
	updated, err := UpdateBudgetProfile(db, userID, &amount, &eur)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.WeeklyBudgetAmount.Equal(decimal.NewFromInt(120)) {
		t.Errorf("Expected budget 120, got %s", updated.WeeklyBudgetAmount)
	}
	if updated.Currency != "EUR" {
		t.Errorf("Expected currency EUR, got %s", updated.Currency)
	}

	_, err = UpdateBudgetProfile(db, userID, nil, nil)
	if !types.IsValidation(err) {
		t.Errorf("Expected validation error for empty update, got %v", err)
	}

	one := decimal.NewFromInt(1)
	_, err = UpdateBudgetProfile(db, 9999, &one, nil)
	if !types.IsNotFound(err) {
		t.Errorf("Expected not found for missing profile, got %v", err)
	}
}
