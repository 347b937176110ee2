package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Dwieght/deer-sub000/internal/models"
	"github.com/Dwieght/deer-sub000/internal/service"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

type SubmitLetterRequest struct {
	Name           string `json:"name" validate:"required"`
	EnglishMessage string `json:"englishMessage" validate:"required"`
	ArabicMessage  string `json:"arabicMessage"`
	TiktokLink     string `json:"tiktokLink"`
}

func (h *Handlers) SubmitLetter(w http.ResponseWriter, r *http.Request) {
	var req SubmitLetterRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.EnglishMessage = strings.TrimSpace(req.EnglishMessage)
	req.ArabicMessage = strings.TrimSpace(req.ArabicMessage)
	req.TiktokLink = strings.TrimSpace(req.TiktokLink)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "name and englishMessage are required", http.StatusBadRequest)
		return
	}

	letter, err := h.SubmissionService.SubmitLetter(r.Context(), service.SubmitLetterRequest{
		Name:           req.Name,
		EnglishMessage: req.EnglishMessage,
		ArabicMessage:  req.ArabicMessage,
		TiktokLink:     req.TiktokLink,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, letter, http.StatusCreated)
}

type SubmitGalleryRequest struct {
	Name      string `json:"name" validate:"required"`
	Caption   string `json:"caption" validate:"required"`
	Category  string `json:"category" validate:"required"`
	VideoURL  string `json:"videoUrl"`
	ImageData string `json:"imageData"`
}

func (h *Handlers) SubmitGalleryItem(w http.ResponseWriter, r *http.Request) {
	var req SubmitGalleryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Caption = strings.TrimSpace(req.Caption)
	req.Category = strings.ToUpper(strings.TrimSpace(req.Category))
	req.VideoURL = strings.TrimSpace(req.VideoURL)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "name, caption and category are required", http.StatusBadRequest)
		return
	}
	if !inAllowSet(req.Category, models.GalleryCategories) {
		WriteError(w, "category must be one of PHOTOS, VIDEOS, ART", http.StatusBadRequest)
		return
	}

	svcReq := service.SubmitGalleryRequest{
		Name:     req.Name,
		Caption:  req.Caption,
		Category: req.Category,
		VideoURL: req.VideoURL,
	}

	// VIDEOS entries need a link; everything else needs inline image bytes
	if req.Category == models.CategoryVideos {
		if req.VideoURL == "" {
			WriteError(w, "videoUrl is required for VIDEOS submissions", http.StatusBadRequest)
			return
		}
	} else {
		data, contentType, err := parseInlineImage(req.ImageData, h.Cfg.MaxUploadSize)
		if err != nil {
			WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		svcReq.ImageData = data
		svcReq.ImageContentType = contentType
	}

	item, err := h.SubmissionService.SubmitGalleryItem(r.Context(), svcReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, item, http.StatusCreated)
}

type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Type    string `json:"type"`
	Message string `json:"message" validate:"required"`
}

func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req SubmitContactRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "name, email and message are required", http.StatusBadRequest)
		return
	}

	msg, err := h.SubmissionService.SubmitContact(r.Context(), service.SubmitContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Type:    req.Type,
		Message: req.Message,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, msg, http.StatusCreated)
}

type SubmitJoinRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (h *Handlers) SubmitJoin(w http.ResponseWriter, r *http.Request) {
	var req SubmitJoinRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "name and email are required", http.StatusBadRequest)
		return
	}

	join, err := h.SubmissionService.SubmitJoin(r.Context(), service.SubmitJoinRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, join, http.StatusCreated)
}

type SubmitFeedbackRequest struct {
	ProductID string `json:"productId" validate:"required"`
	FullName  string `json:"fullName" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Rating    int    `json:"rating" validate:"required"`
}

func (h *Handlers) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req SubmitFeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.ProductID = strings.TrimSpace(req.ProductID)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Message = strings.TrimSpace(req.Message)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "productId, fullName, message and rating are required", http.StatusBadRequest)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		WriteError(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	fb, err := h.SubmissionService.SubmitFeedback(r.Context(), service.SubmitFeedbackRequest{
		ProductID: req.ProductID,
		FullName:  req.FullName,
		Message:   req.Message,
		Rating:    req.Rating,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, fb, http.StatusCreated)
}

type SubmitPaymentRequest struct {
	SenderName      string   `json:"senderName" validate:"required"`
	ReferenceNumber string   `json:"referenceNumber" validate:"required"`
	Amount          *float64 `json:"amount"`
	QRCodeID        *string  `json:"qrCodeId"`
}

func (h *Handlers) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req SubmitPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.SenderName = strings.TrimSpace(req.SenderName)
	req.ReferenceNumber = strings.TrimSpace(req.ReferenceNumber)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "senderName and referenceNumber are required", http.StatusBadRequest)
		return
	}
	if req.Amount != nil && *req.Amount < 0 {
		WriteError(w, "amount must not be negative", http.StatusBadRequest)
		return
	}

	sub, err := h.SubmissionService.SubmitPayment(r.Context(), service.SubmitPaymentRequest{
		SenderName:      req.SenderName,
		ReferenceNumber: req.ReferenceNumber,
		Amount:          req.Amount,
		QRCodeID:        req.QRCodeID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, sub, http.StatusCreated)
}

type CheckoutRequest struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	ProductID      string `json:"productId" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required"`
	Region         string `json:"region" validate:"required"`
	Province       string `json:"province" validate:"required"`
	City           string `json:"city" validate:"required"`
	Barangay       string `json:"barangay" validate:"required"`
	PostalCode     string `json:"postalCode" validate:"required"`
	Street         string `json:"street" validate:"required"`
	HouseNumber    string `json:"houseNumber" validate:"required"`
	AddressLabel   string `json:"addressLabel" validate:"required"`
	GcashReference string `json:"gcashReference" validate:"required"`
}

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.ProductID = strings.TrimSpace(req.ProductID)
	req.Region = strings.TrimSpace(req.Region)
	req.Province = strings.TrimSpace(req.Province)
	req.City = strings.TrimSpace(req.City)
	req.Barangay = strings.TrimSpace(req.Barangay)
	req.PostalCode = strings.TrimSpace(req.PostalCode)
	req.Street = strings.TrimSpace(req.Street)
	req.HouseNumber = strings.TrimSpace(req.HouseNumber)
	req.AddressLabel = strings.TrimSpace(req.AddressLabel)
	req.GcashReference = strings.TrimSpace(req.GcashReference)

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "all order and address fields are required", http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		WriteError(w, "quantity must be at least 1", http.StatusBadRequest)
		return
	}

	order, err := h.ShopService.Checkout(r.Context(), service.CheckoutRequest{
		Name:           req.Name,
		Phone:          req.Phone,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		Region:         req.Region,
		Province:       req.Province,
		City:           req.City,
		Barangay:       req.Barangay,
		PostalCode:     req.PostalCode,
		Street:         req.Street,
		HouseNumber:    req.HouseNumber,
		AddressLabel:   req.AddressLabel,
		GcashReference: req.GcashReference,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, order, http.StatusCreated)
}

// LookupOrder serves anonymous order tracking by full id or short suffix.
func (h *Handlers) LookupOrder(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["id"]
	if len(strings.TrimSpace(ref)) < 4 {
		WriteError(w, "order reference must be at least 4 characters", http.StatusBadRequest)
		return
	}

	order, err := h.ShopService.LookupOrder(r.Context(), ref)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, order, http.StatusOK)
}

// Public read layer: approved content only.

func (h *Handlers) GetLetters(w http.ResponseWriter, r *http.Request) {
	letters, err := h.Repo.Letter.ListApproved(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, letters, http.StatusOK)
}

func (h *Handlers) GetGallery(w http.ResponseWriter, r *http.Request) {
	category := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("category")))
	if category != "" && !inAllowSet(category, models.GalleryCategories) {
		WriteError(w, "category must be one of PHOTOS, VIDEOS, ART", http.StatusBadRequest)
		return
	}

	items, err := h.Repo.Gallery.ListApproved(r.Context(), category)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, items, http.StatusOK)
}

func (h *Handlers) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.Repo.Announcement.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, announcements, http.StatusOK)
}

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Repo.Product.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, products, http.StatusOK)
}

// GetProduct returns one product with its approved feedback attached.
func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.Repo.Product.GetByID(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	feedback, err := h.Repo.Feedback.ListApprovedByProduct(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"product":  product,
		"feedback": feedback,
	}, http.StatusOK)
}

func (h *Handlers) GetVideos(w http.ResponseWriter, r *http.Request) {
	collections, err := h.Repo.Video.ListCollections(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, collections, http.StatusOK)
}
