package models

import (
	"github.com/shopspring/decimal"
)

// UserBudgetProfile is one row per user for the weekly grocery budget.
type UserBudgetProfile struct {
	UserID             uint64          `gorm:"primaryKey;autoIncrement:false"`
	WeeklyBudgetAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency           string          `gorm:"size:8;not null"`
}

// UserDietProfile is one row per user for dietary preferences. DietTypes is
// a comma-joined tag list, e.g. "Vegetarian,Gluten Free".
type UserDietProfile struct {
	UserID    uint64 `gorm:"primaryKey;autoIncrement:false"`
	DietTypes string `gorm:"size:255;not null"`
	Notes     string `gorm:"size:512"`
}

// TableName overrides the table name for UserBudgetProfile
func (UserBudgetProfile) TableName() string {
	return "user_budget_profiles"
}

// TableName overrides the table name for UserDietProfile
func (UserDietProfile) TableName() string {
	return "user_diet_profiles"
}
