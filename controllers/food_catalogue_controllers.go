package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-delivery/services"
	"github.com/yeremiapane/food-delivery/utils"
)

// FoodCatalogueController serves the catalogue page of the web client.
type FoodCatalogueController struct {
	FoodItems *services.FoodItemService
}

func NewFoodCatalogueController(foodItems *services.FoodItemService) *FoodCatalogueController {
	return &FoodCatalogueController{FoodItems: foodItems}
}

// GetFoodCatalogue -> GET /food-catalogue/:id, relays the catalogue page as is.
func (fc *FoodCatalogueController) GetFoodCatalogue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	page, err := fc.FoodItems.GetFoodItemsByRestaurant(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", page)
}
