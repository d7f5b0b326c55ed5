package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-delivery/config"
	"github.com/yeremiapane/food-delivery/controllers"
	"github.com/yeremiapane/food-delivery/feed"
	"github.com/yeremiapane/food-delivery/middlewares"
	"github.com/yeremiapane/food-delivery/services"
	"github.com/yeremiapane/food-delivery/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, limiter *middlewares.RateLimiter) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		utils.ErrorLogger.WithError(err).Error("Invalid trusted proxies, forwarded headers are ignored")
		r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(limiter.RateLimit())

	httpClient := services.NewHTTPClient(cfg.Upstream.Timeout)
	foodItemSvc := services.NewFoodItemService(cfg.Upstream.FoodCatalogueURL, httpClient)
	restaurantSvc := services.NewRestaurantService(cfg.Upstream.RestaurantListingURL, httpClient)
	orderSvc := services.NewOrderService(cfg.Upstream.OrderURL, httpClient)
	hub := feed.NewHub()

	// controllers
	catalogueCtrl := controllers.NewFoodCatalogueController(foodItemSvc)
	summaryCtrl := controllers.NewOrderSummaryController(orderSvc)
	restaurantCtrl := controllers.NewRestaurantController(db)
	foodItemCtrl := controllers.NewFoodItemController(db, restaurantSvc)
	orderCtrl := controllers.NewOrderController(db, hub)
	feedCtrl := controllers.NewFeedController(hub, cfg.CORSOrigin)

	summarySubmit := middlewares.SubmitRateLimiter(100*time.Millisecond, 20)
	backendSubmit := middlewares.SubmitRateLimiter(100*time.Millisecond, 20)
	requireAdmin := []gin.HandlerFunc{
		middlewares.AuthMiddleware(cfg.JWTSecret),
		middlewares.RequireRole(utils.RoleAdmin),
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      WEB CLIENT
	// ----------------------------------------------------------------
	NewRestaurantListingModule(restaurantSvc).Register(r)

	r.GET("/food-catalogue/:id", catalogueCtrl.GetFoodCatalogue)

	r.GET("/order-summary", summaryCtrl.GetOrderSummary)
	r.POST("/order-summary", summarySubmit, summaryCtrl.SaveOrder)
	r.POST("/order-summary/close", summaryCtrl.CloseDialog)

	// ----------------------------------------------------------------
	//                      BACKEND SERVICES
	// ----------------------------------------------------------------
	restaurant := r.Group("/restaurant")
	{
		restaurant.GET("/fetchAllRestaurants", restaurantCtrl.FetchAllRestaurants)
		restaurant.GET("/fetchById/:id", restaurantCtrl.FetchRestaurantByID)
		restaurant.POST("/addRestaurant", append(requireAdmin, restaurantCtrl.AddRestaurant)...)
	}

	catalogue := r.Group("/foodCatalogue")
	{
		catalogue.GET("/fetchRestaurantAndFoodItemsById/:id", foodItemCtrl.FetchRestaurantAndFoodItemsByID)
		catalogue.POST("/addFoodItem", append(requireAdmin, foodItemCtrl.AddFoodItem)...)
	}

	r.POST("/order/saveOrder", backendSubmit, orderCtrl.SaveOrder)

	r.GET("/ws/orders", append(requireAdmin, feedCtrl.Subscribe)...)

	return r
}
