package models

type Restaurant struct {
	ID                    uint   `gorm:"primaryKey" json:"id"`
	Name                  string `gorm:"type:varchar(255);not null" json:"name"`
	Address               string `gorm:"type:varchar(255)" json:"address"`
	City                  string `gorm:"type:varchar(100)" json:"city"`
	RestaurantDescription string `gorm:"type:text" json:"restaurantDescription"`
}
