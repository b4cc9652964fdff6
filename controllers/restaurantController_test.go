package controller_test

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishijha390/delhi-tandoori-momo/routes"
)

func newRestaurantRouter() *mux.Router {
	return newAPIRouter(func(api *mux.Router) {
		routes.RestaurantRoutes(api)
	})
}

func TestHealthCheck(t *testing.T) {
	router := newRestaurantRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestGetRestaurantInfo(t *testing.T) {
	router := newRestaurantRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/restaurant/info", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var info map[string]interface{}
	decodeBody(t, rec, &info)
	assert.Equal(t, "Delhi Tandoori Momo", info["englishName"])
	assert.Equal(t, 4.5, info["rating"])

	services, ok := info["services"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, services, "Delivery")

	social, ok := info["socialMedia"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, social["whatsapp"])
}
