package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/rishijha390/delhi-tandoori-momo/controllers"
)

func MenuRoutes(router *mux.Router, mc *controllers.MenuController) {
	router.HandleFunc("/menu/categories", mc.GetMenuCategories).Methods(http.MethodGet)
	router.HandleFunc("/menu/items", mc.GetMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menu/item/{item_id}", mc.GetMenuItem).Methods(http.MethodGet)
}
