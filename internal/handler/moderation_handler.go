package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Dwieght/deer-sub000/internal/service"
)

// Moderation queue endpoints. The kind segment is resolved against a
// fixed allow-set before any store access; unknown kinds are a client
// error, as is a blank id.

func (h *Handlers) Approve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind, id := vars["kind"], strings.TrimSpace(vars["id"])
	if id == "" {
		WriteError(w, "missing id", http.StatusBadRequest)
		return
	}

	if err := h.ModerationService.Approve(r.Context(), kind, id); err != nil {
		if errors.Is(err, service.ErrUnknownKind) {
			WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}

func (h *Handlers) Decline(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind, id := vars["kind"], strings.TrimSpace(vars["id"])
	if id == "" {
		WriteError(w, "missing id", http.StatusBadRequest)
		return
	}

	if err := h.ModerationService.Decline(r.Context(), kind, id); err != nil {
		if errors.Is(err, service.ErrUnknownKind) {
			WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}

// ListPending serves the per-kind review queue.
func (h *Handlers) ListPending(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	var (
		data interface{}
		err  error
	)

	switch kind {
	case "letters":
		data, err = h.Repo.Letter.ListPending(r.Context())
	case "gallery":
		data, err = h.Repo.Gallery.ListPending(r.Context())
	case "contact-messages":
		data, err = h.Repo.Contact.ListPending(r.Context())
	case "join-requests":
		data, err = h.Repo.Join.ListPending(r.Context())
	case "feedback":
		data, err = h.Repo.Feedback.ListPending(r.Context())
	default:
		WriteError(w, service.ErrUnknownKind.Error()+": "+kind, http.StatusBadRequest)
		return
	}

	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, data, http.StatusOK)
}

// Stats reports per-table row counts for the dashboard.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Repo.Stats.CountRows(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, counts, http.StatusOK)
}
