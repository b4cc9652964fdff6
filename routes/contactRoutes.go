package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/rishijha390/delhi-tandoori-momo/controllers"
)

func ContactRoutes(router *mux.Router, cc *controllers.ContactController) {
	router.HandleFunc("/contact", cc.CreateContactMessage).Methods(http.MethodPost)
	router.HandleFunc("/contact/messages", cc.GetContactMessages).Methods(http.MethodGet)
	router.HandleFunc("/contact/messages/{message_id}/read", cc.MarkMessageRead).Methods(http.MethodPatch)
}
