package models

// FoodCataloguePage merges a restaurant with the food items it sells.
type FoodCataloguePage struct {
	FoodItemsList []FoodItem  `json:"foodItemsList"`
	Restaurant    *Restaurant `json:"restaurant"`
}
