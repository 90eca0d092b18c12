package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"creatorclasses_server/auth"
	"creatorclasses_server/mocks"
	"creatorclasses_server/models"
	"creatorclasses_server/routes"
	"creatorclasses_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router   *mux.Router
	tokens   *auth.TokenService
	classes  *services.ClassService
	profiles *services.CreatorProfileService
	subs     *services.SubscriptionService
	sqs      *mocks.FakeSQS
}

func newTestServer() *testServer {
	db := mocks.NewFakeDynamoDB()
	s3Fake := mocks.NewFakeS3()
	sqsFake := mocks.NewFakeSQS()

	dynamo := &services.DynamoService{Client: db}
	s3Service := &services.S3Service{Client: s3Fake, Bucket: "test-bucket", Region: "us-east-1"}
	notifier := &services.NotificationService{Client: sqsFake, QueueURL: "https://sqs.test/queue"}

	profiles := &services.CreatorProfileService{Dynamo: dynamo, S3: s3Service}
	classes := &services.ClassService{Dynamo: dynamo, S3: s3Service, Notifier: notifier, Profiles: profiles}
	subs := &services.SubscriptionService{Dynamo: dynamo, Classes: classes}

	tokens := auth.NewTokenService("test-secret-key")

	r := mux.NewRouter()
	routes.RegisterClassRoutes(r, classes, tokens)
	routes.RegisterSubscriptionRoutes(r, subs, tokens)
	routes.RegisterCreatorProfileRoutes(r, profiles, tokens)

	return &testServer{router: r, tokens: tokens, classes: classes, profiles: profiles, subs: subs, sqs: sqsFake}
}

func (ts *testServer) bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := ts.tokens.GenerateToken(userID, models.ScopeAccessAsUser)
	require.NoError(t, err)
	return "Bearer " + token
}

func (ts *testServer) do(t *testing.T, method, path, authHeader string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// seedCreator registers a profile so the user can manage classes.
func (ts *testServer) seedCreator(t *testing.T, userID string) {
	t.Helper()
	_, err := ts.profiles.CreateOrUpdateProfile(context.Background(), userID, models.CreatorProfileDto{Name: "Creator"})
	require.NoError(t, err)
}

func TestListClasses_EmptyStore(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, "GET", "/classes", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetClass_UnknownID(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, "GET", "/classes/999999", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListClassesByCreator_NonIntegerID(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, "GET", "/classes/byCreator/abc", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListClassesByCreator_UnmatchedInteger(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, "GET", "/classes/byCreator/999999", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateClass_RequiresAuth(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, "POST", "/classes", "", models.CreatorClassDto{Name: "Class"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateClass_ReturnsAssignedID(t *testing.T) {
	ts := newTestServer()
	ts.seedCreator(t, "user-1")

	w := ts.do(t, "POST", "/classes", ts.bearer(t, "user-1"), models.CreatorClassDto{
		Name:        "Dog Training",
		Description: "A great class about great dogs!",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "1", response["id"])

	// The class is readable without auth afterwards.
	get := ts.do(t, "GET", "/classes/1", "", nil)
	require.Equal(t, http.StatusOK, get.Code)
	var class models.CreatorClass
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &class))
	assert.Equal(t, "Dog Training", class.Name)
}

func TestAddVideo_UnknownClass(t *testing.T) {
	ts := newTestServer()
	ts.seedCreator(t, "user-1")

	w := ts.do(t, "POST", "/classes/42/videos", ts.bearer(t, "user-1"), models.VideoDto{Name: "Intro"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddVideo_AppendsAndReturnsVideo(t *testing.T) {
	ts := newTestServer()
	ts.seedCreator(t, "user-1")
	created := ts.do(t, "POST", "/classes", ts.bearer(t, "user-1"), models.CreatorClassDto{Name: "Class"})
	require.Equal(t, http.StatusOK, created.Code)

	w := ts.do(t, "POST", "/classes/1/videos", ts.bearer(t, "user-1"), models.VideoDto{
		Name:     "Intro",
		VideoSrc: "https://videos.example/intro",
		Seconds:  605,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var video models.Video
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &video))
	assert.Equal(t, "1", video.VideoID)
	assert.Len(t, ts.sqs.Sent(), 1)
}
