package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, the way the web client sends them.
	decimal.MarshalJSONWithoutQuotes = true
}

// FoodItem is a purchasable catalogue entry tied to a restaurant.
// Price and Quantity are nullable on the wire; the web client leaves them
// out for items that were never added to the basket.
type FoodItem struct {
	ID              uint                `gorm:"primaryKey" json:"id"`
	ItemName        string              `gorm:"type:varchar(255);not null" json:"itemName"`
	ItemDescription string              `gorm:"type:text" json:"itemDescription"`
	IsVeg           bool                `json:"isVeg"`
	Price           decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"price"`
	RestaurantID    uint                `gorm:"index" json:"restaurantId"`
	Quantity        *int                `gorm:"not null;default:0" json:"quantity" binding:"omitempty,min=0"`
}

// LineTotal returns quantity × price, counting a missing quantity or price as zero.
func (f FoodItem) LineTotal() decimal.Decimal {
	if f.Quantity == nil || !f.Price.Valid {
		return decimal.Zero
	}
	return f.Price.Decimal.Mul(decimal.NewFromInt(int64(*f.Quantity)))
}
