package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/yeremiapane/food-delivery/models"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantService is the client of the restaurant listing backend (API_URL_RL).
type RestaurantService struct {
	baseURL    string
	httpClient *http.Client
}

func NewRestaurantService(baseURL string, httpClient *http.Client) *RestaurantService {
	return &RestaurantService{baseURL: baseURL, httpClient: httpClient}
}

func (s *RestaurantService) FetchAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	body, err := doJSON(ctx, s.httpClient, http.MethodGet, s.baseURL+"/restaurant/fetchAllRestaurants", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch restaurants: %w", err)
	}

	var restaurants []models.Restaurant
	if err := json.Unmarshal(body, &restaurants); err != nil {
		return nil, fmt.Errorf("decode restaurants: %w", err)
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	return restaurants, nil
}

func (s *RestaurantService) FetchRestaurantByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	url := s.baseURL + "/restaurant/fetchById/" + strconv.FormatUint(uint64(id), 10)
	body, err := doJSON(ctx, s.httpClient, http.MethodGet, url, nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("restaurant %d: %w", id, ErrRestaurantNotFound)
		}
		return nil, fmt.Errorf("fetch restaurant %d: %w", id, err)
	}

	var restaurant models.Restaurant
	if err := json.Unmarshal(body, &restaurant); err != nil {
		return nil, fmt.Errorf("decode restaurant %d: %w", id, err)
	}
	return &restaurant, nil
}
