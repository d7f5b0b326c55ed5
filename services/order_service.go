package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/yeremiapane/food-delivery/models"
)

var ErrOrderService = errors.New("order service unavailable")

// OrderService is the client of the order backend (API_URL_OS).
type OrderService struct {
	saveURL    string
	httpClient *http.Client
}

func NewOrderService(baseURL string, httpClient *http.Client) *OrderService {
	return &OrderService{
		saveURL:    baseURL + "/order/saveOrder",
		httpClient: httpClient,
	}
}

// SaveOrder posts the order and returns what the backend stored.
func (s *OrderService) SaveOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	body, err := doJSON(ctx, s.httpClient, http.MethodPost, s.saveURL, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderService, err)
	}

	var saved models.Order
	if err := json.Unmarshal(body, &saved); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrOrderService, err)
	}
	return &saved, nil
}
