package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-delivery/controllers"
	"github.com/yeremiapane/food-delivery/services"
)

// RestaurantListingModule groups the restaurant listing page with its routes.
type RestaurantListingModule struct {
	Listing *controllers.RestaurantListingController
}

func NewRestaurantListingModule(restaurants *services.RestaurantService) *RestaurantListingModule {
	return &RestaurantListingModule{
		Listing: controllers.NewRestaurantListingController(restaurants),
	}
}

// Register mounts the listing on the root route, which is where the
// order summary sends customers back to.
func (m *RestaurantListingModule) Register(r gin.IRoutes) {
	r.GET(services.RootRoute, m.Listing.ListRestaurants)
	r.GET("/restaurant-listing", m.Listing.ListRestaurants)
}
