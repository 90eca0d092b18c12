package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter(tokens *TokenService) *mux.Router {
	r := mux.NewRouter()
	protected := r.PathPrefix("/test").Subrouter()
	protected.Use(RequireScope(tokens, "access_as_user"))
	protected.HandleFunc("", func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserIDFromContext(r.Context())
		w.Write([]byte(userID))
	}).Methods("GET")
	return r
}

func TestRequireScope_ValidToken(t *testing.T) {
	tokens := NewTokenService("test-secret-key")
	token, _ := tokens.GenerateToken("user-123", "access_as_user")

	router := setupTestRouter(tokens)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-123", w.Body.String())
}

func TestRequireScope_NoHeader(t *testing.T) {
	tokens := NewTokenService("test-secret-key")
	router := setupTestRouter(tokens)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireScope_InvalidFormat(t *testing.T) {
	tokens := NewTokenService("test-secret-key")
	router := setupTestRouter(tokens)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireScope_InvalidToken(t *testing.T) {
	tokens := NewTokenService("test-secret-key")
	router := setupTestRouter(tokens)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireScope_MissingScope(t *testing.T) {
	tokens := NewTokenService("test-secret-key")
	token, _ := tokens.GenerateToken("user-123", "some_other_scope")

	router := setupTestRouter(tokens)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHasScope_SpaceSeparatedClaim(t *testing.T) {
	assert.True(t, hasScope("openid access_as_user profile", "access_as_user"))
	assert.False(t, hasScope("openid profile", "access_as_user"))
	assert.False(t, hasScope("", "access_as_user"))
}
