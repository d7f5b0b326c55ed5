package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-delivery/feed"
	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/services"
	"github.com/yeremiapane/food-delivery/utils"
)

// OrderController is the order backend.
type OrderController struct {
	DB  *gorm.DB
	Hub *feed.Hub
}

func NewOrderController(db *gorm.DB, hub *feed.Hub) *OrderController {
	return &OrderController{DB: db, Hub: hub}
}

// SaveOrder -> POST /order/saveOrder
func (oc *OrderController) SaveOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := services.ValidateOrder(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	placed := models.NewPlacedOrder(&order)
	placed.CreatedAt = time.Now()
	if err := oc.DB.Create(&placed).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Infof("Order %d saved for user %d, total %s", placed.ID, placed.UserID, placed.TotalAmount.StringFixed(2))
	oc.Hub.BroadcastOrderSaved(placed)

	c.JSON(http.StatusCreated, placed.ToOrder())
}
