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

// CreatorProfileController handles requests for creator profiles
type CreatorProfileController struct {
	ProfileService *services.CreatorProfileService
}

// NewCreatorProfileController creates a new instance of CreatorProfileController
func NewCreatorProfileController(profileService *services.CreatorProfileService) *CreatorProfileController {
	return &CreatorProfileController{ProfileService: profileService}
}

// GetProfile handles GET /creatorProfile for the authenticated user.
func (c *CreatorProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	profile, err := c.ProfileService.GetProfileByUserID(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// CreateOrUpdateProfile handles POST /creatorProfile
func (c *CreatorProfileController) CreateOrUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var dto models.CreatorProfileDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request payload"})
		return
	}

	profile, err := c.ProfileService.CreateOrUpdateProfile(r.Context(), userID, dto)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// SetProfilePicture handles POST /creatorProfile/Picture
func (c *CreatorProfileController) SetProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart payload"})
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "missing image file"})
		return
	}
	defer file.Close()

	url, err := c.ProfileService.SetProfilePicture(r.Context(), userID, file)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"imageSrc": url})
}

// ListCreators handles GET /creators
func (c *CreatorProfileController) ListCreators(w http.ResponseWriter, r *http.Request) {
	creators, err := c.ProfileService.ListCreators(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, creators)
}

// GetCreator handles GET /creators/{id}
func (c *CreatorProfileController) GetCreator(w http.ResponseWriter, r *http.Request) {
	creatorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "creator id must be an integer"})
		return
	}

	creator, err := c.ProfileService.GetCreator(r.Context(), creatorID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, creator)
}
