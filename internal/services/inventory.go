// inventory.go
//
// MealMind API - meal planning and food waste tracking data service

package services

import (
	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryRow is an inventory item joined with its ingredient's category
// metadata for listing.
type InventoryRow struct {
	UserID         uint64
	IngredientID   uint64
	AddedDate      types.FlexDate
	Quantity       float64
	Unit           string
	ExpirationDate *types.FlexDate
	Status         string
	CategoryID     *uint64
	CategoryName   *string
}

// ExpiringRow is an inventory item inside the expiration window, carrying
// the computed distance to its expiration date. DaysToExpire is negative for
// items already past expiry.
type ExpiringRow struct {
	UserID         uint64
	IngredientID   uint64
	AddedDate      types.FlexDate
	Quantity       float64
	Unit           string
	ExpirationDate types.FlexDate
	Status         string
	DaysToExpire   int `gorm:"-" json:"days_to_expire"`
}

// AddItemInput carries the fields of an inventory add.
type AddItemInput struct {
	UserID         uint64
	IngredientID   uint64
	Quantity       float64
	Unit           string
	ExpirationDate *types.FlexDate
	Status         string
}

// ListInventory returns all items a user holds, joined with ingredient and
// category metadata, soonest expiration first with never-expiring items last.
func ListInventory(db *gorm.DB, userID uint64) ([]InventoryRow, error) {
	var rows []InventoryRow
	err := db.Table("inventory_items ii").
		Select("ii.user_id, ii.ingredient_id, ii.added_date, ii.quantity, ii.unit, ii.expiration_date, ii.status, i.category_id, c.category_name").
		Joins("JOIN ingredients i ON ii.ingredient_id = i.ingredient_id").
		Joins("LEFT JOIN categories c ON i.category_id = c.category_id").
		Where("ii.user_id = ?", userID).
		Order("ii.expiration_date IS NULL, ii.expiration_date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AddInventoryItem adds stock for a user. A row already added today for the
// same ingredient accumulates the incoming quantity; unit, expiration and
// status are overwritten by the incoming values. Rows from other days are
// never touched, even for the same user and ingredient. The lookup and write
// run under a row lock in one transaction so concurrent same-day adds cannot
// both insert.
//
// Returns the resulting row and whether it was merged into an existing one.
func AddInventoryItem(db *gorm.DB, in AddItemInput) (models.InventoryItem, bool, error) {
	if in.Quantity <= 0 {
		return models.InventoryItem{}, false, types.NewValidation("quantity must be positive")
	}
	if in.Unit == "" {
		return models.InventoryItem{}, false, types.NewValidation("unit is required")
	}
	if in.Status == "" {
		in.Status = "ok"
	}

	today := types.Today()
	var item models.InventoryItem
	merged := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.InventoryItem
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND ingredient_id = ? AND added_date = ?", in.UserID, in.IngredientID, today).
			First(&existing).Error

		if err == nil {
			existing.Quantity += in.Quantity
			existing.Unit = in.Unit
			existing.ExpirationDate = in.ExpirationDate
			existing.Status = in.Status
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			item = existing
			merged = true
			return nil
		}

		if err != gorm.ErrRecordNotFound {
			return err
		}

		item = models.InventoryItem{
			UserID:         in.UserID,
			IngredientID:   in.IngredientID,
			AddedDate:      today,
			Quantity:       in.Quantity,
			Unit:           in.Unit,
			ExpirationDate: in.ExpirationDate,
			Status:         in.Status,
		}
		return tx.Create(&item).Error
	})

	return item, merged, err
}

// UpdateInventoryItem applies the supplied column updates to the row
// identified by the composite key. addedDate is normalized to the canonical
// calendar-date form before comparison.
func UpdateInventoryItem(db *gorm.DB, userID, ingredientID uint64, addedDate string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return types.NewValidation("no updatable fields provided")
	}

	result := db.Model(&models.InventoryItem{}).
		Where("user_id = ? AND ingredient_id = ? AND added_date = ?",
			userID, ingredientID, types.NormalizeDate(addedDate)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("inventory item")
	}
	return nil
}

// DeleteInventoryItem removes the exact composite-key row.
func DeleteInventoryItem(db *gorm.DB, userID, ingredientID uint64, addedDate string) error {
	result := db.
		Where("user_id = ? AND ingredient_id = ? AND added_date = ?",
			userID, ingredientID, types.NormalizeDate(addedDate)).
		Delete(&models.InventoryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return types.NewNotFound("inventory item")
	}
	return nil
}

// ListExpiringInventory returns items whose expiration date is set and falls
// on or before today plus daysAhead. Items already past expiry are included
// with a negative DaysToExpire; items without an expiration date never
// appear.
func ListExpiringInventory(db *gorm.DB, userID uint64, daysAhead int) ([]ExpiringRow, error) {
	today := types.Today()
	cutoff := today.AddDays(daysAhead)

	var rows []ExpiringRow
	err := db.Table("inventory_items").
		Select("user_id, ingredient_id, added_date, quantity, unit, expiration_date, status").
		Where("user_id = ? AND expiration_date IS NOT NULL AND expiration_date <= ?", userID, cutoff).
		Order("expiration_date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].DaysToExpire = types.DaysBetween(today, rows[i].ExpirationDate)
	}
	return rows, nil
}
