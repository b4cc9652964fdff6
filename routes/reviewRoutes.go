package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/rishijha390/delhi-tandoori-momo/controllers"
)

func ReviewRoutes(router *mux.Router, rc *controllers.ReviewController) {
	router.HandleFunc("/reviews", rc.GetReviews).Methods(http.MethodGet)
	router.HandleFunc("/reviews", rc.CreateReview).Methods(http.MethodPost)
	router.HandleFunc("/reviews/{review_id}/approve", rc.ApproveReview).Methods(http.MethodPatch)
}
