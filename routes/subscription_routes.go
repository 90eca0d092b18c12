package routes

import (
	"creatorclasses_server/auth"
	"creatorclasses_server/controllers"
	"creatorclasses_server/models"
	"creatorclasses_server/services"

	"github.com/gorilla/mux"
)

// RegisterSubscriptionRoutes sets up routes for subscriptions under /subscriptions
func RegisterSubscriptionRoutes(r *mux.Router, subscriptionService *services.SubscriptionService, tokens *auth.TokenService) {
	controller := controllers.NewSubscriptionController(subscriptionService)

	subscriptionRouter := r.PathPrefix("/subscriptions").Subrouter()
	subscriptionRouter.Use(auth.RequireScope(tokens, models.ScopeAccessAsUser))

	subscriptionRouter.HandleFunc("", controller.ListSubscriptions).Methods("GET")
	subscriptionRouter.HandleFunc("", controller.Subscribe).Methods("POST")
	subscriptionRouter.HandleFunc("/{id}", controller.Unsubscribe).Methods("DELETE")
}
