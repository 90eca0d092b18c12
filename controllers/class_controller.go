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

// maxImageUploadBytes caps multipart image uploads.
const maxImageUploadBytes = 10 << 20

// ClassController handles requests for the class catalog
type ClassController struct {
	ClassService *services.ClassService
}

// NewClassController creates a new instance of ClassController
func NewClassController(classService *services.ClassService) *ClassController {
	return &ClassController{ClassService: classService}
}

// ListClasses handles GET /classes
func (c *ClassController) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := c.ClassService.ListClasses(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, classes)
}

// GetClass handles GET /classes/{id}
func (c *ClassController) GetClass(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["id"]

	class, err := c.ClassService.GetClass(r.Context(), classID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, class)
}

// ListClassesByCreator handles GET /classes/byCreator/{id}
func (c *ClassController) ListClassesByCreator(w http.ResponseWriter, r *http.Request) {
	creatorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "creator id must be an integer"})
		return
	}

	classes, err := c.ClassService.ListClassesByCreator(r.Context(), creatorID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, classes)
}

// CreateOrUpdateClass handles POST /classes
func (c *ClassController) CreateOrUpdateClass(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var dto models.CreatorClassDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request payload"})
		return
	}

	classID, err := c.ClassService.CreateOrUpdateClass(r.Context(), userID, dto)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"id": classID})
}

// AddVideo handles POST /classes/{id}/videos
func (c *ClassController) AddVideo(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	classID := mux.Vars(r)["id"]

	var dto models.VideoDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request payload"})
		return
	}

	video, err := c.ClassService.AddVideo(r.Context(), userID, classID, dto)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, video)
}

// SetClassPicture handles POST /classes/{id}/picture
func (c *ClassController) SetClassPicture(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	classID := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart payload"})
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "missing image file"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	url, err := c.ClassService.SetClassPicture(r.Context(), userID, classID, file, contentType)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"imageSrc": url})
}
