package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/Dwieght/deer-sub000/internal/config"
	handlers "github.com/Dwieght/deer-sub000/internal/handler"
)

// testEnv wires handlers against mocked services. Repo stays nil: routes
// that read the store directly are covered by the repository tests.
type testEnv struct {
	handler    *handlers.Handlers
	auth       *MockAuthService
	submission *MockSubmissionService
	shop       *MockShopService
	content    *MockContentService
	moderation *MockModerationService
}

func newTestEnv() *testEnv {
	auth := new(MockAuthService)
	submission := new(MockSubmissionService)
	shop := new(MockShopService)
	content := new(MockContentService)
	moderation := new(MockModerationService)

	cfg := &config.Config{
		ServerPort:      8080,
		SessionSecret:   "test-secret-key",
		SessionDuration: time.Hour,
		MaxUploadSize:   2800000,
	}

	return &testEnv{
		handler: &handlers.Handlers{
			AuthService:       auth,
			SubmissionService: submission,
			ShopService:       shop,
			ModerationService: moderation,
			ContentService:    content,
			Repo:              nil,
			Cfg:               cfg,
			Validate:          validator.New(),
		},
		auth:       auth,
		submission: submission,
		shop:       shop,
		content:    content,
		moderation: moderation,
	}
}

// assertJSONError checks the status code and the JSON error payload.
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}
