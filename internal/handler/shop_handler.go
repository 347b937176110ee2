package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Dwieght/deer-sub000/internal/models"
	"github.com/Dwieght/deer-sub000/internal/service"
)

type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	ImageURLs   []string `json:"imageUrls"`
	Sizes       []string `json:"sizes"`
	Description string   `json:"description"`
}

func (h *Handlers) productFromRequest(r *http.Request) (*models.Product, string) {
	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err.Error()
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := h.Validate.Struct(req); err != nil {
		return nil, "name is required"
	}
	if req.Price < 0 {
		return nil, "price must not be negative"
	}

	return &models.Product{
		Name:        req.Name,
		Category:    strings.TrimSpace(req.Category),
		Price:       req.Price,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		ImageURLs:   req.ImageURLs,
		Sizes:       req.Sizes,
		Description: strings.TrimSpace(req.Description),
	}, ""
}

func (h *Handlers) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	product, errMsg := h.productFromRequest(r)
	if errMsg != "" {
		WriteError(w, errMsg, http.StatusBadRequest)
		return
	}

	if err := h.Repo.Product.Create(r.Context(), product); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, product, http.StatusCreated)
}

func (h *Handlers) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	product, errMsg := h.productFromRequest(r)
	if errMsg != "" {
		WriteError(w, errMsg, http.StatusBadRequest)
		return
	}
	product.ProductID = mux.Vars(r)["id"]

	if err := h.Repo.Product.Update(r.Context(), product); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, product, http.StatusOK)
}

func (h *Handlers) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Product.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}

func (h *Handlers) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.Order.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, orders, http.StatusOK)
}

type UpdateOrderRequest struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required"`
	Status         string `json:"status" validate:"required"`
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

func (h *Handlers) AdminUpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Status = strings.ToUpper(strings.TrimSpace(req.Status))

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "all order fields are required", http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		WriteError(w, "quantity must be at least 1", http.StatusBadRequest)
		return
	}
	if !inAllowSet(req.Status, models.OrderStatuses) {
		WriteError(w, "status must be one of PENDING, PAID, SHIPPED, DELIVERED, CANCELLED", http.StatusBadRequest)
		return
	}

	order, err := h.ShopService.UpdateOrder(r.Context(), service.UpdateOrderRequest{
		OrderID:        mux.Vars(r)["id"],
		Name:           req.Name,
		Phone:          req.Phone,
		Quantity:       req.Quantity,
		Status:         req.Status,
		Region:         strings.TrimSpace(req.Region),
		Province:       strings.TrimSpace(req.Province),
		City:           strings.TrimSpace(req.City),
		Barangay:       strings.TrimSpace(req.Barangay),
		PostalCode:     strings.TrimSpace(req.PostalCode),
		Street:         strings.TrimSpace(req.Street),
		HouseNumber:    strings.TrimSpace(req.HouseNumber),
		AddressLabel:   strings.TrimSpace(req.AddressLabel),
		GcashReference: strings.TrimSpace(req.GcashReference),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, order, http.StatusOK)
}

func (h *Handlers) AdminDeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Order.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}

type QRCodeRequest struct {
	Label    string `json:"label" validate:"required"`
	ImageURL string `json:"imageUrl"`
	Active   bool   `json:"active"`
}

func (h *Handlers) AdminListQRCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.Repo.Payment.ListQRCodes(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, codes, http.StatusOK)
}

func (h *Handlers) AdminCreateQRCode(w http.ResponseWriter, r *http.Request) {
	var req QRCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Label = strings.TrimSpace(req.Label)
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "label is required", http.StatusBadRequest)
		return
	}

	qr := &models.PaymentQRCode{
		Label:    req.Label,
		ImageURL: strings.TrimSpace(req.ImageURL),
		Active:   req.Active,
	}
	if err := h.Repo.Payment.CreateQRCode(r.Context(), qr); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, qr, http.StatusCreated)
}

func (h *Handlers) AdminUpdateQRCode(w http.ResponseWriter, r *http.Request) {
	var req QRCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Label = strings.TrimSpace(req.Label)
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "label is required", http.StatusBadRequest)
		return
	}

	qr := &models.PaymentQRCode{
		QRCodeID: mux.Vars(r)["id"],
		Label:    req.Label,
		ImageURL: strings.TrimSpace(req.ImageURL),
		Active:   req.Active,
	}
	if err := h.Repo.Payment.UpdateQRCode(r.Context(), qr); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, qr, http.StatusOK)
}

// AdminDeleteQRCode removes a QR code; submissions that referenced it are
// unlinked, never deleted.
func (h *Handlers) AdminDeleteQRCode(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Payment.DeleteQRCode(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}

func (h *Handlers) AdminListPaymentSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Repo.Payment.ListSubmissions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, subs, http.StatusOK)
}

type UpdatePaymentSubmissionRequest struct {
	SenderName      string   `json:"senderName" validate:"required"`
	ReferenceNumber string   `json:"referenceNumber" validate:"required"`
	Amount          *float64 `json:"amount"`
	Matched         bool     `json:"matched"`
}

func (h *Handlers) AdminUpdatePaymentSubmission(w http.ResponseWriter, r *http.Request) {
	var req UpdatePaymentSubmissionRequest
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

	sub, err := h.ShopService.UpdatePaymentSubmission(r.Context(), service.UpdatePaymentSubmissionRequest{
		SubmissionID:    mux.Vars(r)["id"],
		SenderName:      req.SenderName,
		ReferenceNumber: req.ReferenceNumber,
		Amount:          req.Amount,
		Matched:         req.Matched,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, sub, http.StatusOK)
}

func (h *Handlers) AdminDeletePaymentSubmission(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Payment.DeleteSubmission(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"ok": true}, http.StatusOK)
}
