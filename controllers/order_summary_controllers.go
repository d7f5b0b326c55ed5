package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/services"
	"github.com/yeremiapane/food-delivery/utils"
)

type OrderSummaryController struct {
	Orders services.OrderSaver
}

func NewOrderSummaryController(orders services.OrderSaver) *OrderSummaryController {
	return &OrderSummaryController{Orders: orders}
}

type orderSummaryView struct {
	Order        *models.Order   `json:"order"`
	Total        decimal.Decimal `json:"total"`
	DisplayTotal string          `json:"displayTotal"`
	ShowDialog   bool            `json:"showDialog"`
}

func newOrderSummaryView(s *services.OrderSummary) orderSummaryView {
	return orderSummaryView{
		Order:        s.Order,
		Total:        s.Total,
		DisplayTotal: utils.FormatCurrency(s.Total),
		ShowDialog:   s.ShowDialog,
	}
}

// redirectNavigator turns client-side navigation into an HTTP redirect.
type redirectNavigator struct {
	c *gin.Context
}

func (n redirectNavigator) Navigate(path string) {
	n.c.Redirect(http.StatusSeeOther, path)
}

// GetOrderSummary -> GET /order-summary?data=<json order>
func (oc *OrderSummaryController) GetOrderSummary(c *gin.Context) {
	summary, err := services.NewOrderSummary(c.Query("data"), oc.Orders, redirectNavigator{c})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order summary", newOrderSummaryView(summary))
}

// SaveOrder -> POST /order-summary?data=<json order>
func (oc *OrderSummaryController) SaveOrder(c *gin.Context) {
	summary, err := services.NewOrderSummary(c.Query("data"), oc.Orders, redirectNavigator{c})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	saved, err := summary.SaveOrder(c.Request.Context())
	if err != nil {
		c.Error(err)
		if errors.Is(err, services.ErrOrderService) {
			utils.RespondError(c, http.StatusBadGateway, services.ErrOrderService)
			return
		}
		utils.RespondError(c, http.StatusBadGateway, errors.New("failed to save order"))
		return
	}

	view := newOrderSummaryView(summary)
	view.Order = saved
	utils.RespondJSON(c, http.StatusCreated, "Order placed", view)
}

// CloseDialog -> POST /order-summary/close, redirects to the listing page.
func (oc *OrderSummaryController) CloseDialog(c *gin.Context) {
	services.OpenDialog(redirectNavigator{c}).CloseDialog()
}
