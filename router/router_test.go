package router

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-delivery/config"
	"github.com/yeremiapane/food-delivery/database"
	"github.com/yeremiapane/food-delivery/middlewares"
)

func setupTestRouter(t *testing.T, limiter *middlewares.RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{
		CORSOrigin:     "http://localhost:4200",
		JWTSecret:      []byte("router-secret"),
		TrustedProxies: []string{"127.0.0.1"},
		Upstream: config.UpstreamConfig{
			FoodCatalogueURL:     "http://127.0.0.1:1",
			RestaurantListingURL: "http://127.0.0.1:1",
			OrderURL:             "http://127.0.0.1:1",
			Timeout:              time.Second,
		},
	}
	return SetupRouter(db, cfg, limiter)
}

func ping(r http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	r := setupTestRouter(t, middlewares.NewRateLimiter(0.001, 3))

	codes := make([]int, 0, 5)
	for i := 1; i <= 5; i++ {
		codes = append(codes, ping(r, "203.0.113.9:5000", "10.0.0."+strconv.Itoa(i)))
	}
	assert.Equal(t, []int{200, 200, 200, 429, 429}, codes)
}

func TestRateLimitPerCustomerBehindTrustedProxy(t *testing.T) {
	r := setupTestRouter(t, middlewares.NewRateLimiter(0.001, 3))

	for i := 1; i <= 5; i++ {
		assert.Equal(t, http.StatusOK, ping(r, "127.0.0.1:40000", "10.0.0."+strconv.Itoa(i)))
	}

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, ping(r, "127.0.0.1:40000", "10.0.0.1"))
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestRateLimitSkipsSelfCalls(t *testing.T) {
	r := setupTestRouter(t, middlewares.NewRateLimiter(0.001, 1))

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, ping(r, "127.0.0.1:40000", ""))
	}
}

func TestOrderSubmitBucketsAreSeparate(t *testing.T) {
	r := setupTestRouter(t, middlewares.NewRateLimiter(1000, 1000))

	limited := false
	for i := 0; i < 60 && !limited; i++ {
		req := httptest.NewRequest(http.MethodPost, "/order/saveOrder", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		limited = w.Code == http.StatusTooManyRequests
	}
	require.True(t, limited, "backend submit bucket never ran out")

	req := httptest.NewRequest(http.MethodPost, "/order-summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
