package models

import (
	"github.com/mealmind/mealmind-api/internal/types"
)

// MealPlan is a date-bounded plan header owned by a user. Entries live in
// MealPlanEntry and are created and deleted together with the header in a
// single transaction.
type MealPlan struct {
	MealPlanID uint64         `gorm:"primaryKey;autoIncrement"`
	UserID     uint64         `gorm:"index;not null"`
	StartDate  types.FlexDate `gorm:"size:10;not null"`
	EndDate    types.FlexDate `gorm:"size:10;not null"`
	IsSaved    bool           `gorm:"not null;default:true"`
}

// MealPlanEntry is one meal slot: a (date, meal type) pair inside the plan's
// range, optionally pointing at a recipe. RecipeID stays null when no active
// recipe existed at generation time.
type MealPlanEntry struct {
	MealPlanID uint64         `gorm:"primaryKey;autoIncrement:false"`
	Date       types.FlexDate `gorm:"primaryKey;size:10"`
	MealType   string         `gorm:"primaryKey;size:16"`
	RecipeID   *uint64        `gorm:"index"`
	Notes      string         `gorm:"size:512"`
}

// TableName overrides the table name for MealPlan
func (MealPlan) TableName() string {
	return "meal_plans"
}

// TableName overrides the table name for MealPlanEntry
func (MealPlanEntry) TableName() string {
	return "meal_plan_entries"
}
