package routes

import (
	"creatorclasses_server/auth"
	"creatorclasses_server/controllers"
	"creatorclasses_server/models"
	"creatorclasses_server/services"

	"github.com/gorilla/mux"
)

// RegisterCreatorProfileRoutes sets up the authenticated profile routes under
// /creatorProfile and the public creator directory under /creators
func RegisterCreatorProfileRoutes(r *mux.Router, profileService *services.CreatorProfileService, tokens *auth.TokenService) {
	controller := controllers.NewCreatorProfileController(profileService)

	profileRouter := r.PathPrefix("/creatorProfile").Subrouter()
	profileRouter.Use(auth.RequireScope(tokens, models.ScopeAccessAsUser))
	profileRouter.HandleFunc("", controller.GetProfile).Methods("GET")
	profileRouter.HandleFunc("", controller.CreateOrUpdateProfile).Methods("POST")
	profileRouter.HandleFunc("/Picture", controller.SetProfilePicture).Methods("POST")

	// Public creator directory
	r.HandleFunc("/creators", controller.ListCreators).Methods("GET")
	r.HandleFunc("/creators/{id}", controller.GetCreator).Methods("GET")
}
