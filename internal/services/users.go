// users.go
//
// MealMind API - meal planning and food waste tracking data service

package services

import (
	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/types"
	"gorm.io/gorm"
)

// ListUsers returns all registered users ordered by id.
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Order("user_id").Find(&users).Error
	return users, err
}

// GetUser returns one user by id.
func GetUser(db *gorm.DB, userID uint64) (models.User, error) {
	var user models.User
	err := db.Where("user_id = ?", userID).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return user, types.NewNotFound("user")
	}
	return user, err
}
