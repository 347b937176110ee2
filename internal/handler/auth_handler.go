package handlers

import (
	"net/http"
	"strings"

	"github.com/Dwieght/deer-sub000/internal/auth"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Ok    bool   `json:"ok"`
	Email string `json:"email"`
}

// Login verifies the credential and sets the session cookie. Unknown
// email and wrong password are answered identically.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	admin, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	auth.SetSessionCookie(w, token, h.Cfg.SessionDuration, h.Cfg.Production)
	WriteSuccess(w, LoginResponse{Ok: true, Email: admin.Email}, http.StatusOK)
}

// Logout clears the cookie. The token itself stays valid until expiry;
// there is no server-side session to revoke.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.Cfg.Production)
	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}

type UpsertAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpsertAdmin creates an admin credential or rotates the password of an
// existing one.
func (h *Handlers) UpsertAdmin(w http.ResponseWriter, r *http.Request) {
	var req UpsertAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "a valid email and a password of at least 8 characters are required", http.StatusBadRequest)
		return
	}

	admin, err := h.AuthService.UpsertAdmin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, admin, http.StatusOK)
}
