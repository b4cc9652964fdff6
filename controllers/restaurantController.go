package controller

import (
	"net/http"

	"github.com/rishijha390/delhi-tandoori-momo/helper"
	"github.com/rishijha390/delhi-tandoori-momo/models"
)

// Get static restaurant information
func GetRestaurantInfo(w http.ResponseWriter, r *http.Request) {
	helper.RespondJSON(w, http.StatusOK, models.RestaurantDetails())
}

// Liveness check
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	helper.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Delhi Tandoori Momo API is running!",
		"status":  "healthy",
	})
}
