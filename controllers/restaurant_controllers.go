package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/utils"
)

// RestaurantController is the restaurant listing backend.
type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// FetchAllRestaurants -> GET /restaurant/fetchAllRestaurants
func (rc *RestaurantController) FetchAllRestaurants(c *gin.Context) {
	restaurants := []models.Restaurant{}
	if err := rc.DB.Order("id").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// AddRestaurant -> POST /restaurant/addRestaurant
func (rc *RestaurantController) AddRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	restaurant.Name = strings.TrimSpace(restaurant.Name)
	if restaurant.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}
	restaurant.ID = 0

	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.InfoLogger.Infof("Restaurant %d (%s) added", restaurant.ID, restaurant.Name)
	c.JSON(http.StatusCreated, restaurant)
}

// FetchRestaurantByID -> GET /restaurant/fetchById/:id
func (rc *RestaurantController) FetchRestaurantByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}
