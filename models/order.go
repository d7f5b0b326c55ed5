package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the order as the web client assembles it before submission.
type Order struct {
	OrderID       uint        `json:"orderId,omitempty"`
	FoodItemsList []FoodItem  `json:"foodItemsList" binding:"required,dive"`
	UserID        int         `json:"userId"`
	Restaurant    *Restaurant `json:"restaurant"`
}

// Total sums quantity × price over every item.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.FoodItemsList {
		total = total.Add(item.LineTotal())
	}
	return total
}

// PlacedOrder is the stored form of a submitted order. The item list and
// restaurant snapshot are kept as JSON columns.
type PlacedOrder struct {
	ID            uint            `gorm:"primaryKey" json:"orderId"`
	UserID        int             `gorm:"not null;index" json:"userId"`
	RestaurantID  *uint           `gorm:"index" json:"restaurantId,omitempty"`
	FoodItemsList []FoodItem      `gorm:"type:text;serializer:json" json:"foodItemsList"`
	Restaurant    *Restaurant     `gorm:"type:text;serializer:json" json:"restaurant"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"totalAmount"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
}

// NewPlacedOrder snapshots o for storage.
func NewPlacedOrder(o *Order) PlacedOrder {
	placed := PlacedOrder{
		UserID:        o.UserID,
		FoodItemsList: o.FoodItemsList,
		Restaurant:    o.Restaurant,
		TotalAmount:   o.Total(),
	}
	if o.Restaurant != nil {
		id := o.Restaurant.ID
		placed.RestaurantID = &id
	}
	return placed
}

// ToOrder converts the stored record back into the wire form.
func (p PlacedOrder) ToOrder() Order {
	return Order{
		OrderID:       p.ID,
		FoodItemsList: p.FoodItemsList,
		UserID:        p.UserID,
		Restaurant:    p.Restaurant,
	}
}
