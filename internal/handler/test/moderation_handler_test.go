package test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Dwieght/deer-sub000/internal/repository"
	"github.com/Dwieght/deer-sub000/internal/service"
)

func TestApproveHandler_Success(t *testing.T) {
	env := newTestEnv()

	env.moderation.On("Approve", mock.Anything, "letters", "letter-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/moderation/letters/letter-1/approve", nil)
	req = mux.SetURLVars(req, map[string]string{"kind": "letters", "id": "letter-1"})
	rr := httptest.NewRecorder()

	env.handler.Approve(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	env.moderation.AssertExpectations(t)
}

func TestApproveHandler_UnknownKind(t *testing.T) {
	env := newTestEnv()

	env.moderation.On("Approve", mock.Anything, "users", "some-id").
		Return(fmt.Errorf("%w: users", service.ErrUnknownKind))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/moderation/users/some-id/approve", nil)
	req = mux.SetURLVars(req, map[string]string{"kind": "users", "id": "some-id"})
	rr := httptest.NewRecorder()

	env.handler.Approve(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "unknown submission kind")
}

func TestApproveHandler_MissingID(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/moderation/letters//approve", nil)
	req = mux.SetURLVars(req, map[string]string{"kind": "letters", "id": "  "})
	rr := httptest.NewRecorder()

	env.handler.Approve(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "missing id")
	env.moderation.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeclineHandler_Success(t *testing.T) {
	env := newTestEnv()

	env.moderation.On("Decline", mock.Anything, "feedback", "fb-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/moderation/feedback/fb-1/decline", nil)
	req = mux.SetURLVars(req, map[string]string{"kind": "feedback", "id": "fb-1"})
	rr := httptest.NewRecorder()

	env.handler.Decline(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	env.moderation.AssertExpectations(t)
}

func TestDeclineHandler_NotFound(t *testing.T) {
	env := newTestEnv()

	env.moderation.On("Decline", mock.Anything, "gallery", "missing-item").
		Return(repository.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/moderation/gallery/missing-item/decline", nil)
	req = mux.SetURLVars(req, map[string]string{"kind": "gallery", "id": "missing-item"})
	rr := httptest.NewRecorder()

	env.handler.Decline(rr, req)

	assertJSONError(t, rr, http.StatusNotFound, "not found")
}
