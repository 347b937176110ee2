package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/Dwieght/deer-sub000/internal/config"
	"github.com/Dwieght/deer-sub000/internal/media"
	"github.com/Dwieght/deer-sub000/internal/models"
	"github.com/Dwieght/deer-sub000/internal/repository"
	"github.com/Dwieght/deer-sub000/internal/storage"
)

type SubmitLetterRequest struct {
	Name           string
	EnglishMessage string
	ArabicMessage  string
	TiktokLink     string
}

type SubmitGalleryRequest struct {
	Name             string
	Caption          string
	Category         string
	VideoURL         string
	ImageData        []byte
	ImageContentType string
}

type SubmitContactRequest struct {
	Name    string
	Email   string
	Type    string
	Message string
}

type SubmitJoinRequest struct {
	Name  string
	Email string
}

type SubmitFeedbackRequest struct {
	ProductID string
	FullName  string
	Message   string
	Rating    int
}

type SubmitPaymentRequest struct {
	SenderName      string
	ReferenceNumber string
	Amount          *float64
	QRCodeID        *string
}

type SubmissionService interface {
	SubmitLetter(ctx context.Context, req SubmitLetterRequest) (*models.Letter, error)
	SubmitGalleryItem(ctx context.Context, req SubmitGalleryRequest) (*models.GalleryItem, error)
	SubmitContact(ctx context.Context, req SubmitContactRequest) (*models.ContactMessage, error)
	SubmitJoin(ctx context.Context, req SubmitJoinRequest) (*models.JoinRequest, error)
	SubmitFeedback(ctx context.Context, req SubmitFeedbackRequest) (*models.ProductFeedback, error)
	SubmitPayment(ctx context.Context, req SubmitPaymentRequest) (*models.PaymentSubmission, error)
}

type submissionService struct {
	repo    *repository.Repository
	cfg     *config.Config
	storage storage.Storage
}

func NewSubmissionService(repo *repository.Repository, cfg *config.Config, storage storage.Storage) SubmissionService {
	return &submissionService{
		repo:    repo,
		cfg:     cfg,
		storage: storage,
	}
}

// SubmitLetter persists a fan letter awaiting review.
func (s *submissionService) SubmitLetter(ctx context.Context, req SubmitLetterRequest) (*models.Letter, error) {
	letter := &models.Letter{
		Name:           req.Name,
		EnglishMessage: req.EnglishMessage,
		ArabicMessage:  req.ArabicMessage,
		TiktokLink:     media.NormalizeTikTok(req.TiktokLink),
		Status:         models.StatusPending,
	}

	if err := s.repo.Letter.Create(ctx, letter); err != nil {
		return nil, err
	}

	return letter, nil
}

// SubmitGalleryItem stores a pending gallery entry. VIDEOS entries carry a
// normalized video URL; PHOTOS and ART entries had their inline image
// decoded at the boundary and the bytes are uploaded here.
func (s *submissionService) SubmitGalleryItem(ctx context.Context, req SubmitGalleryRequest) (*models.GalleryItem, error) {
	item := &models.GalleryItem{
		Name:     req.Name,
		Caption:  req.Caption,
		Category: req.Category,
		Status:   models.StatusPending,
	}

	uploadedObject := ""
	if req.Category == models.CategoryVideos {
		item.VideoURL = media.NormalizeVideoURL(req.VideoURL)
	} else {
		objectName, imageURL, err := s.storage.UploadImage(ctx, "gallery",
			req.ImageContentType, bytes.NewReader(req.ImageData), int64(len(req.ImageData)))
		if err != nil {
			return nil, fmt.Errorf("failed to store gallery image: %w", err)
		}
		uploadedObject = objectName
		item.ImageURL = imageURL
	}

	if err := s.repo.Gallery.Create(ctx, item); err != nil {
		if uploadedObject != "" {
			s.storage.DeleteImage(ctx, uploadedObject)
		}
		return nil, err
	}

	return item, nil
}

func (s *submissionService) SubmitContact(ctx context.Context, req SubmitContactRequest) (*models.ContactMessage, error) {
	msgType := strings.TrimSpace(req.Type)
	if msgType == "" {
		msgType = "other"
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Type:    msgType,
		Message: req.Message,
		Status:  models.StatusPending,
	}

	if err := s.repo.Contact.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

func (s *submissionService) SubmitJoin(ctx context.Context, req SubmitJoinRequest) (*models.JoinRequest, error) {
	join := &models.JoinRequest{
		Name:   req.Name,
		Email:  req.Email,
		Status: models.StatusPending,
	}

	if err := s.repo.Join.Create(ctx, join); err != nil {
		return nil, err
	}

	return join, nil
}

// SubmitFeedback requires the referenced product to exist.
func (s *submissionService) SubmitFeedback(ctx context.Context, req SubmitFeedbackRequest) (*models.ProductFeedback, error) {
	if _, err := s.repo.Product.GetByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	fb := &models.ProductFeedback{
		ProductID: req.ProductID,
		FullName:  req.FullName,
		Message:   req.Message,
		Rating:    req.Rating,
		Status:    models.StatusPending,
	}

	if err := s.repo.Feedback.Create(ctx, fb); err != nil {
		return nil, err
	}

	return fb, nil
}

// SubmitPayment records a buyer-submitted GCash proof. A referenced QR
// code must exist; matching is an admin action later.
func (s *submissionService) SubmitPayment(ctx context.Context, req SubmitPaymentRequest) (*models.PaymentSubmission, error) {
	if req.QRCodeID != nil && *req.QRCodeID != "" {
		if _, err := s.repo.Payment.GetQRCodeByID(ctx, *req.QRCodeID); err != nil {
			return nil, err
		}
	} else {
		req.QRCodeID = nil
	}

	sub := &models.PaymentSubmission{
		SenderName:      req.SenderName,
		ReferenceNumber: req.ReferenceNumber,
		Amount:          req.Amount,
		QRCodeID:        req.QRCodeID,
		Matched:         false,
	}

	if err := s.repo.Payment.CreateSubmission(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}
