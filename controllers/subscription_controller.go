package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"creatorclasses_server/auth"
	"creatorclasses_server/models"
	"creatorclasses_server/services"

	"github.com/gorilla/mux"
)

// SubscriptionController handles requests for the subscription ledger
type SubscriptionController struct {
	SubscriptionService *services.SubscriptionService
}

// NewSubscriptionController creates a new instance of SubscriptionController
func NewSubscriptionController(subscriptionService *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{SubscriptionService: subscriptionService}
}

// ListSubscriptions handles GET /subscriptions and returns the class
// documents the caller is subscribed to.
func (c *SubscriptionController) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	classes, err := c.SubscriptionService.ListSubscribedClasses(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, classes)
}

// Subscribe handles POST /subscriptions
func (c *SubscriptionController) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var dto models.SubscriptionDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request payload"})
		return
	}

	subscription, err := c.SubscriptionService.Subscribe(r.Context(), userID, dto.ClassID, dto.Email)
	if err != nil {
		respondError(w, err)
		return
	}

	// The body is the subscribed class id as a bare integer.
	classID, err := strconv.Atoi(subscription.ClassID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, classID)
}

// Unsubscribe handles DELETE /subscriptions/{id}, where id is the class id.
// Only the caller's own subscription row can be removed.
func (c *SubscriptionController) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	classID := mux.Vars(r)["id"]

	if err := c.SubscriptionService.Unsubscribe(r.Context(), userID, classID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
