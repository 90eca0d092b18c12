package routes

import (
	"creatorclasses_server/auth"
	"creatorclasses_server/controllers"
	"creatorclasses_server/models"
	"creatorclasses_server/services"

	"github.com/gorilla/mux"
)

// RegisterClassRoutes sets up routes for the class catalog under /classes
func RegisterClassRoutes(r *mux.Router, classService *services.ClassService, tokens *auth.TokenService) {
	controller := controllers.NewClassController(classService)

	// Public reads
	r.HandleFunc("/classes", controller.ListClasses).Methods("GET")
	r.HandleFunc("/classes/byCreator/{id}", controller.ListClassesByCreator).Methods("GET")
	r.HandleFunc("/classes/{id}", controller.GetClass).Methods("GET")

	// Writes require the user scope
	protected := r.PathPrefix("/classes").Subrouter()
	protected.Use(auth.RequireScope(tokens, models.ScopeAccessAsUser))
	protected.HandleFunc("", controller.CreateOrUpdateClass).Methods("POST")
	protected.HandleFunc("/{id}/picture", controller.SetClassPicture).Methods("POST")
	protected.HandleFunc("/{id}/videos", controller.AddVideo).Methods("POST")
}
