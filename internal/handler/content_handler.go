package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Dwieght/deer-sub000/internal/models"
	"github.com/Dwieght/deer-sub000/internal/service"
)

// Admin-authored content management. Everything here sits behind the
// session middleware.

type AdminLetterRequest struct {
	Name           string `json:"name" validate:"required"`
	EnglishMessage string `json:"englishMessage" validate:"required"`
	ArabicMessage  string `json:"arabicMessage"`
	TiktokLink     string `json:"tiktokLink"`
}

func (h *Handlers) AdminCreateLetter(w http.ResponseWriter, r *http.Request) {
	var req AdminLetterRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.EnglishMessage = strings.TrimSpace(req.EnglishMessage)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "name and englishMessage are required", http.StatusBadRequest)
		return
	}

	letter, err := h.ContentService.CreateLetter(r.Context(), service.AdminLetterRequest{
		Name:           req.Name,
		EnglishMessage: req.EnglishMessage,
		ArabicMessage:  strings.TrimSpace(req.ArabicMessage),
		TiktokLink:     strings.TrimSpace(req.TiktokLink),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, letter, http.StatusCreated)
}

func (h *Handlers) AdminUpdateLetter(w http.ResponseWriter, r *http.Request) {
	var req AdminLetterRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.EnglishMessage = strings.TrimSpace(req.EnglishMessage)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "name and englishMessage are required", http.StatusBadRequest)
		return
	}

	letter, err := h.ContentService.UpdateLetter(r.Context(), service.AdminLetterRequest{
		LetterID:       mux.Vars(r)["id"],
		Name:           req.Name,
		EnglishMessage: req.EnglishMessage,
		ArabicMessage:  strings.TrimSpace(req.ArabicMessage),
		TiktokLink:     strings.TrimSpace(req.TiktokLink),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, letter, http.StatusOK)
}

func (h *Handlers) AdminDeleteLetter(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Letter.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}

type AdminGalleryRequest struct {
	Name      string `json:"name" validate:"required"`
	Caption   string `json:"caption" validate:"required"`
	Category  string `json:"category" validate:"required"`
	VideoURL  string `json:"videoUrl"`
	ImageURL  string `json:"imageUrl"`
	ImageData string `json:"imageData"`
}

func (h *Handlers) adminGalleryRequest(r *http.Request) (*service.AdminGalleryRequest, string) {
	var req AdminGalleryRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err.Error()
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Caption = strings.TrimSpace(req.Caption)
	req.Category = strings.ToUpper(strings.TrimSpace(req.Category))

	if err := h.Validate.Struct(req); err != nil {
		return nil, "name, caption and category are required"
	}
	if !inAllowSet(req.Category, models.GalleryCategories) {
		return nil, "category must be one of PHOTOS, VIDEOS, ART"
	}

	svcReq := &service.AdminGalleryRequest{
		Name:     req.Name,
		Caption:  req.Caption,
		Category: req.Category,
		VideoURL: strings.TrimSpace(req.VideoURL),
		ImageURL: strings.TrimSpace(req.ImageURL),
	}

	if req.ImageData != "" {
		data, contentType, err := parseInlineImage(req.ImageData, h.Cfg.MaxUploadSize)
		if err != nil {
			return nil, err.Error()
		}
		svcReq.ImageData = data
		svcReq.ImageContentType = contentType
	}

	return svcReq, ""
}

func (h *Handlers) AdminCreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	svcReq, errMsg := h.adminGalleryRequest(r)
	if errMsg != "" {
		WriteError(w, errMsg, http.StatusBadRequest)
		return
	}

	// same media contract as public submissions: a new item is never
	// accepted without its medium
	if svcReq.Category == models.CategoryVideos {
		if svcReq.VideoURL == "" {
			WriteError(w, "videoUrl is required for VIDEOS items", http.StatusBadRequest)
			return
		}
	} else if svcReq.ImageURL == "" && len(svcReq.ImageData) == 0 {
		WriteError(w, "imageUrl or imageData is required for PHOTOS and ART items", http.StatusBadRequest)
		return
	}

	item, err := h.ContentService.CreateGalleryItem(r.Context(), *svcReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, item, http.StatusCreated)
}

func (h *Handlers) AdminUpdateGalleryItem(w http.ResponseWriter, r *http.Request) {
	svcReq, errMsg := h.adminGalleryRequest(r)
	if errMsg != "" {
		WriteError(w, errMsg, http.StatusBadRequest)
		return
	}
	svcReq.ItemID = mux.Vars(r)["id"]

	item, err := h.ContentService.UpdateGalleryItem(r.Context(), *svcReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, item, http.StatusOK)
}

// AdminDeleteGalleryItem goes through the service so the stored image is
// cleaned up with the row.
func (h *Handlers) AdminDeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentService.DeleteGalleryItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}

type AnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	ImageURL string `json:"imageUrl"`
}

func (h *Handlers) AdminCreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req AnnouncementRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Body = strings.TrimSpace(req.Body)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "title and body are required", http.StatusBadRequest)
		return
	}

	announcement := &models.Announcement{
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: strings.TrimSpace(req.ImageURL),
	}
	if err := h.Repo.Announcement.Create(r.Context(), announcement); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, announcement, http.StatusCreated)
}

func (h *Handlers) AdminUpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req AnnouncementRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Body = strings.TrimSpace(req.Body)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "title and body are required", http.StatusBadRequest)
		return
	}

	announcement := &models.Announcement{
		AnnouncementID: mux.Vars(r)["id"],
		Title:          req.Title,
		Body:           req.Body,
		ImageURL:       strings.TrimSpace(req.ImageURL),
	}
	if err := h.Repo.Announcement.Update(r.Context(), announcement); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, announcement, http.StatusOK)
}

func (h *Handlers) AdminDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Announcement.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}

type VideoCollectionRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (h *Handlers) AdminCreateVideoCollection(w http.ResponseWriter, r *http.Request) {
	var req VideoCollectionRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "title is required", http.StatusBadRequest)
		return
	}

	collection := &models.VideoCollection{
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
	}
	if err := h.Repo.Video.CreateCollection(r.Context(), collection); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, collection, http.StatusCreated)
}

func (h *Handlers) AdminUpdateVideoCollection(w http.ResponseWriter, r *http.Request) {
	var req VideoCollectionRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "title is required", http.StatusBadRequest)
		return
	}

	collection := &models.VideoCollection{
		CollectionID: mux.Vars(r)["id"],
		Title:        req.Title,
		Description:  strings.TrimSpace(req.Description),
	}
	if err := h.Repo.Video.UpdateCollection(r.Context(), collection); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, collection, http.StatusOK)
}

func (h *Handlers) AdminDeleteVideoCollection(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Video.DeleteCollection(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}

type VideoItemRequest struct {
	CollectionID string `json:"collectionId"`
	Title        string `json:"title" validate:"required"`
	VideoURL     string `json:"videoUrl" validate:"required"`
}

func (h *Handlers) AdminCreateVideoItem(w http.ResponseWriter, r *http.Request) {
	var req VideoItemRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.CollectionID = strings.TrimSpace(req.CollectionID)
	req.Title = strings.TrimSpace(req.Title)
	req.VideoURL = strings.TrimSpace(req.VideoURL)

	if err := h.Validate.Struct(req); err != nil || req.CollectionID == "" {
		WriteError(w, "collectionId, title and videoUrl are required", http.StatusBadRequest)
		return
	}

	item, err := h.ContentService.CreateVideoItem(r.Context(), service.VideoItemRequest{
		CollectionID: req.CollectionID,
		Title:        req.Title,
		VideoURL:     req.VideoURL,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, item, http.StatusCreated)
}

func (h *Handlers) AdminUpdateVideoItem(w http.ResponseWriter, r *http.Request) {
	var req VideoItemRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.VideoURL = strings.TrimSpace(req.VideoURL)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "title and videoUrl are required", http.StatusBadRequest)
		return
	}

	item, err := h.ContentService.UpdateVideoItem(r.Context(), service.VideoItemRequest{
		VideoID:  mux.Vars(r)["id"],
		Title:    req.Title,
		VideoURL: req.VideoURL,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, item, http.StatusOK)
}

func (h *Handlers) AdminDeleteVideoItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Video.DeleteItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}
