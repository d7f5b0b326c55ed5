package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/services"
	"github.com/yeremiapane/food-delivery/utils"
)

// FoodItemController is the food catalogue backend. Restaurant details come
// from the restaurant listing backend over HTTP.
type FoodItemController struct {
	DB          *gorm.DB
	Restaurants *services.RestaurantService
}

func NewFoodItemController(db *gorm.DB, restaurants *services.RestaurantService) *FoodItemController {
	return &FoodItemController{DB: db, Restaurants: restaurants}
}

// AddFoodItem -> POST /foodCatalogue/addFoodItem
func (fc *FoodItemController) AddFoodItem(c *gin.Context) {
	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item.ItemName = strings.TrimSpace(item.ItemName)
	switch {
	case item.ItemName == "":
		utils.RespondError(c, http.StatusBadRequest, errors.New("itemName is required"))
		return
	case item.RestaurantID == 0:
		utils.RespondError(c, http.StatusBadRequest, errors.New("restaurantId is required"))
		return
	case item.Price.Valid && item.Price.Decimal.IsNegative():
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
		return
	}
	item.ID = 0
	if item.Quantity == nil {
		zero := 0
		item.Quantity = &zero
	}

	if err := fc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// FetchRestaurantAndFoodItemsByID -> GET /foodCatalogue/fetchRestaurantAndFoodItemsById/:id
func (fc *FoodItemController) FetchRestaurantAndFoodItemsByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	page := models.FoodCataloguePage{FoodItemsList: []models.FoodItem{}}
	if err := fc.DB.Where("restaurant_id = ?", id).Order("id").Find(&page.FoodItemsList).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.InfoLogger.Debugf("Fetched %d food items for restaurant %d", len(page.FoodItemsList), id)

	restaurant, err := fc.Restaurants.FetchRestaurantByID(c.Request.Context(), uint(id))
	if err != nil {
		utils.ErrorLogger.WithError(err).Errorf("Restaurant details for %d unavailable", id)
	} else {
		page.Restaurant = restaurant
	}

	c.JSON(http.StatusOK, page)
}

