package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/rishijha390/delhi-tandoori-momo/controllers"
)

func OrderRoutes(router *mux.Router, oc *controllers.OrderController) {
	router.HandleFunc("/orders", oc.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders", oc.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}", oc.GetOrder).Methods(http.MethodGet)
}
