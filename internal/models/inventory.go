package models

import (
	"github.com/mealmind/mealmind-api/internal/types"
)

// InventoryItem is one user's stock of one ingredient added on one calendar
// day. The composite key (UserID, IngredientID, AddedDate) means repeated
// same-day purchases accumulate into a single row; purchases on different
// days stay separate rows on purpose.
//
// Status is caller-supplied free text. It is never derived from the
// expiration date; proximity to expiry is a computed, independent signal.
type InventoryItem struct {
	UserID         uint64          `gorm:"primaryKey;autoIncrement:false"`
	IngredientID   uint64          `gorm:"primaryKey;autoIncrement:false"`
	AddedDate      types.FlexDate  `gorm:"primaryKey;size:10"`
	Quantity       float64         `gorm:"not null"`
	Unit           string          `gorm:"size:32;not null"`
	ExpirationDate *types.FlexDate `gorm:"size:10"`
	Status         string          `gorm:"size:32;not null;default:ok"`
}

// TableName overrides the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}
