// profiles.go
//
// MealMind API - meal planning and food waste tracking data service

package services

import (
	"strings"

	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DietProfileView is a diet profile with its types split back out of the
// stored comma-joined form.
type DietProfileView struct {
	UserID    uint64
	DietTypes []string
	Notes     string
}

func dietView(p models.UserDietProfile) DietProfileView {
	view := DietProfileView{UserID: p.UserID, Notes: p.Notes}
	if p.DietTypes != "" {
		view.DietTypes = strings.Split(p.DietTypes, ",")
	}
	return view
}

// GetDietProfile returns a user's diet profile.
func GetDietProfile(db *gorm.DB, userID uint64) (DietProfileView, error) {
	var p models.UserDietProfile
	err := db.Where("user_id = ?", userID).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return DietProfileView{}, types.NewNotFound("diet profile")
	}
	if err != nil {
		return DietProfileView{}, err
	}
	return dietView(p), nil
}

// CreateDietProfile stores a user's diet profile. Creating a second one
// conflicts; use the update.
func CreateDietProfile(db *gorm.DB, userID uint64, dietTypes []string, notes string) (DietProfileView, error) {
	var count int64
	if err := db.Model(&models.UserDietProfile{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return DietProfileView{}, err
	}
	if count > 0 {
		return DietProfileView{}, types.NewConflict("diet profile already exists")
	}

	p := models.UserDietProfile{
		UserID:    userID,
		DietTypes: strings.Join(dietTypes, ","),
		Notes:     notes,
	}
	if err := db.Create(&p).Error; err != nil {
		return DietProfileView{}, err
	}
	return dietView(p), nil
}

// UpdateDietProfile applies the supplied fields to a user's diet profile.
// Nil fields are left untouched.
func UpdateDietProfile(db *gorm.DB, userID uint64, dietTypes *[]string, notes *string) (DietProfileView, error) {
	updates := map[string]interface{}{}
	if dietTypes != nil {
		updates["diet_types"] = strings.Join(*dietTypes, ",")
	}
	if notes != nil {
		updates["notes"] = *notes
	}
	if len(updates) == 0 {
		return DietProfileView{}, types.NewValidation("no updatable fields provided")
	}

	result := db.Model(&models.UserDietProfile{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		return DietProfileView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return DietProfileView{}, types.NewNotFound("diet profile")
	}
	return GetDietProfile(db, userID)
}

// GetBudgetProfile returns a user's budget profile.
func GetBudgetProfile(db *gorm.DB, userID uint64) (models.UserBudgetProfile, error) {
	var p models.UserBudgetProfile
	err := db.Where("user_id = ?", userID).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return p, types.NewNotFound("budget profile")
	}
	return p, err
}

// CreateBudgetProfile stores a user's weekly budget. Creating a second one
// conflicts; use the update.
func CreateBudgetProfile(db *gorm.DB, userID uint64, amount decimal.Decimal, currency string) (models.UserBudgetProfile, error) {
	if amount.IsNegative() {
		return models.UserBudgetProfile{}, types.NewValidation("weekly_budget_amount must not be negative")
	}
	var count int64
	if err := db.Model(&models.UserBudgetProfile{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return models.UserBudgetProfile{}, err
	}
	if count > 0 {
		return models.UserBudgetProfile{}, types.NewConflict("budget profile already exists")
	}

	if currency == "" {
		currency = "USD"
	}
	p := models.UserBudgetProfile{
		UserID:             userID,
		WeeklyBudgetAmount: amount,
		Currency:           currency,
	}
	err := db.Create(&p).Error
	return p, err
}

// UpdateBudgetProfile applies the supplied fields to a user's budget
// profile. Nil fields are left untouched.
func UpdateBudgetProfile(db *gorm.DB, userID uint64, amount *decimal.Decimal, currency *string) (models.UserBudgetProfile, error) {
	updates := map[string]interface{}{}
	if amount != nil {
		if amount.IsNegative() {
			return models.UserBudgetProfile{}, types.NewValidation("weekly_budget_amount must not be negative")
		}
		updates["weekly_budget_amount"] = *amount
	}
	if currency != nil {
		updates["currency"] = *currency
	}
	if len(updates) == 0 {
		return models.UserBudgetProfile{}, types.NewValidation("no updatable fields provided")
	}

	result := db.Model(&models.UserBudgetProfile{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		return models.UserBudgetProfile{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserBudgetProfile{}, types.NewNotFound("budget profile")
	}
	return GetBudgetProfile(db, userID)
}
