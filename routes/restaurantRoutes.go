package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/rishijha390/delhi-tandoori-momo/controllers"
)

func RestaurantRoutes(router *mux.Router) {
	router.HandleFunc("/", controllers.HealthCheck).Methods(http.MethodGet)
	router.HandleFunc("/restaurant/info", controllers.GetRestaurantInfo).Methods(http.MethodGet)
}
