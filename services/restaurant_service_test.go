package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRestaurantServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/restaurant/fetchAllRestaurants", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Udupi","city":"Pune"},{"id":2,"name":"Spice Hub"}]`))
	})
	mux.HandleFunc("/restaurant/fetchById/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"name":"Udupi","city":"Pune"}`))
	})
	mux.HandleFunc("/restaurant/fetchById/2", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRestaurantService_FetchAllRestaurants(t *testing.T) {
	server := newRestaurantServer(t)
	svc := NewRestaurantService(server.URL, server.Client())

	restaurants, err := svc.FetchAllRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Pune", restaurants[0].City)
	assert.Equal(t, "Spice Hub", restaurants[1].Name)
}

func TestRestaurantService_FetchRestaurantByID(t *testing.T) {
	server := newRestaurantServer(t)
	svc := NewRestaurantService(server.URL, server.Client())

	restaurant, err := svc.FetchRestaurantByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Udupi", restaurant.Name)

	_, err = svc.FetchRestaurantByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	_, err = svc.FetchRestaurantByID(context.Background(), 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRestaurantNotFound)
}
