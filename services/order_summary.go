package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"

	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/utils"
)

const (
	// GuestUserID is attached to every order placed from the web client.
	GuestUserID = 1
	// RootRoute is where the client lands after the confirmation dialog.
	RootRoute = "/"
)

var ErrInvalidOrder = errors.New("invalid order")

type OrderSaver interface {
	SaveOrder(ctx context.Context, order *models.Order) (*models.Order, error)
}

type Navigator interface {
	Navigate(path string)
}

// ParseOrder decodes the JSON order carried in the "data" query parameter.
func ParseOrder(data string) (*models.Order, error) {
	if strings.TrimSpace(data) == "" {
		return nil, fmt.Errorf("%w: missing order data", ErrInvalidOrder)
	}

	if !json.Valid([]byte(data)) {
		return nil, fmt.Errorf("%w: order data is not a single JSON value", ErrInvalidOrder)
	}

	var order models.Order
	if err := binding.JSON.BindBody([]byte(data), &order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	if err := ValidateOrder(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ValidateOrder checks what the binding tags cannot express.
func ValidateOrder(order *models.Order) error {
	for i, item := range order.FoodItemsList {
		if item.Quantity != nil && *item.Quantity < 0 {
			return fmt.Errorf("%w: item %d has negative quantity", ErrInvalidOrder, i)
		}
		if item.Price.Valid && item.Price.Decimal.IsNegative() {
			return fmt.Errorf("%w: item %d has negative price", ErrInvalidOrder, i)
		}
	}
	return nil
}

// OrderSummary is the order as presented to the customer before submission.
type OrderSummary struct {
	Order      *models.Order
	Total      decimal.Decimal
	ShowDialog bool

	saver     OrderSaver
	navigator Navigator
}

// NewOrderSummary parses data, assigns the guest user and computes the total.
func NewOrderSummary(data string, saver OrderSaver, navigator Navigator) (*OrderSummary, error) {
	order, err := ParseOrder(data)
	if err != nil {
		return nil, err
	}
	order.UserID = GuestUserID

	return &OrderSummary{
		Order:     order,
		Total:     order.Total(),
		saver:     saver,
		navigator: navigator,
	}, nil
}

// SaveOrder submits the order once. The confirmation dialog is shown only
// on success; a failure is logged and returned untouched.
func (s *OrderSummary) SaveOrder(ctx context.Context) (*models.Order, error) {
	saved, err := s.saver.SaveOrder(ctx, s.Order)
	if err != nil {
		utils.ErrorLogger.WithError(err).Error("Failed to save order")
		return nil, err
	}
	s.ShowDialog = true
	return saved, nil
}

// CloseDialog hides the confirmation and sends the customer home.
func (s *OrderSummary) CloseDialog() {
	s.ShowDialog = false
	s.navigator.Navigate(RootRoute)
}

// OpenDialog returns a summary whose confirmation dialog is already showing,
// as it is right after a successful SaveOrder. Closing it needs no order.
func OpenDialog(navigator Navigator) *OrderSummary {
	return &OrderSummary{ShowDialog: true, navigator: navigator}
}
