package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/yeremiapane/food-delivery/utils"
)

// ErrSomethingWentWrong is the only error FoodItemService hands back to callers.
var ErrSomethingWentWrong = errors.New("Something went wrong; please try again later.")

const foodCataloguePath = "/foodCatalogue/fetchRestaurantAndFoodItemsById/"

// FoodItemService fetches the food catalogue page of a restaurant.
type FoodItemService struct {
	apiURL     string
	httpClient *http.Client
}

// NewFoodItemService takes the catalogue base URL (API_URL_FC).
func NewFoodItemService(baseURL string, httpClient *http.Client) *FoodItemService {
	return &FoodItemService{
		apiURL:     baseURL + foodCataloguePath,
		httpClient: httpClient,
	}
}

// GetFoodItemsByRestaurant returns the catalogue response body untouched.
// Every failure is logged and reported as ErrSomethingWentWrong.
func (s *FoodItemService) GetFoodItemsByRestaurant(ctx context.Context, id int) (json.RawMessage, error) {
	body, err := doJSON(ctx, s.httpClient, http.MethodGet, s.apiURL+strconv.Itoa(id), nil)
	if err != nil {
		return nil, s.handleError(err)
	}
	if !json.Valid(body) {
		return nil, s.handleError(fmt.Errorf("catalogue answered with a non-JSON body: %q", truncate(body, 64)))
	}
	return json.RawMessage(body), nil
}

func (s *FoodItemService) handleError(err error) error {
	utils.ErrorLogger.WithError(err).Error("An error occurred while fetching food items")
	return ErrSomethingWentWrong
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
