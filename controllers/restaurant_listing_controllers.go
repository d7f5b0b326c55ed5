package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-delivery/services"
	"github.com/yeremiapane/food-delivery/utils"
)

// RestaurantListingController backs the landing page of the web client.
type RestaurantListingController struct {
	Restaurants *services.RestaurantService
}

func NewRestaurantListingController(restaurants *services.RestaurantService) *RestaurantListingController {
	return &RestaurantListingController{Restaurants: restaurants}
}

func (rc *RestaurantListingController) ListRestaurants(c *gin.Context) {
	restaurants, err := rc.Restaurants.FetchAllRestaurants(c.Request.Context())
	if err != nil {
		c.Error(err)
		utils.RespondError(c, http.StatusBadGateway, errors.New("restaurants are unavailable right now"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}
