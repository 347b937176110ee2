package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Dwieght/deer-sub000/internal/config"
	"github.com/Dwieght/deer-sub000/internal/media"
	"github.com/Dwieght/deer-sub000/internal/models"
	"github.com/Dwieght/deer-sub000/internal/repository"
	"github.com/Dwieght/deer-sub000/internal/storage"
)

type AdminLetterRequest struct {
	LetterID       string
	Name           string
	EnglishMessage string
	ArabicMessage  string
	TiktokLink     string
}

type AdminGalleryRequest struct {
	ItemID           string
	Name             string
	Caption          string
	Category         string
	VideoURL         string
	ImageURL         string
	ImageData        []byte
	ImageContentType string
}

type VideoItemRequest struct {
	VideoID      string
	CollectionID string
	Title        string
	VideoURL     string
}

// ContentService covers admin-authored content where creation carries
// extra behavior: trusted content is born APPROVED, media links are
// normalized and inline images go to object storage.
type ContentService interface {
	CreateLetter(ctx context.Context, req AdminLetterRequest) (*models.Letter, error)
	UpdateLetter(ctx context.Context, req AdminLetterRequest) (*models.Letter, error)
	CreateGalleryItem(ctx context.Context, req AdminGalleryRequest) (*models.GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, req AdminGalleryRequest) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, itemID string) error
	CreateVideoItem(ctx context.Context, req VideoItemRequest) (*models.VideoItem, error)
	UpdateVideoItem(ctx context.Context, req VideoItemRequest) (*models.VideoItem, error)
}

type contentService struct {
	repo    *repository.Repository
	cfg     *config.Config
	storage storage.Storage
}

func NewContentService(repo *repository.Repository, cfg *config.Config, storage storage.Storage) ContentService {
	return &contentService{
		repo:    repo,
		cfg:     cfg,
		storage: storage,
	}
}

// objectNameFromURL maps a stored image URL back to its bucket object
// name. Empty when the URL was not produced by our storage layer, so
// externally hosted images are never touched.
func (s *contentService) objectNameFromURL(imageURL string) string {
	prefix := s.cfg.MinIO.PublicBase + "/" + s.cfg.MinIO.BucketName + "/"
	if !strings.HasPrefix(imageURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(imageURL, prefix)
}

// removeStoredImage is best-effort: a failed object delete is logged and
// swallowed, the row operation already succeeded.
func (s *contentService) removeStoredImage(ctx context.Context, imageURL string) {
	objectName := s.objectNameFromURL(imageURL)
	if objectName == "" {
		return
	}
	if err := s.storage.DeleteImage(ctx, objectName); err != nil {
		log.Printf("Warning: failed to delete stored image %s: %v", objectName, err)
	}
}

// CreateLetter creates an admin-authored letter, trusted and visible
// immediately.
func (s *contentService) CreateLetter(ctx context.Context, req AdminLetterRequest) (*models.Letter, error) {
	now := time.Now()
	letter := &models.Letter{
		Name:           req.Name,
		EnglishMessage: req.EnglishMessage,
		ArabicMessage:  req.ArabicMessage,
		TiktokLink:     media.NormalizeTikTok(req.TiktokLink),
		Status:         models.StatusApproved,
		ReviewedAt:     &now,
	}

	if err := s.repo.Letter.Create(ctx, letter); err != nil {
		return nil, err
	}

	return letter, nil
}

// UpdateLetter edits content fields on an approved letter; status and
// reviewed_at stay untouched.
func (s *contentService) UpdateLetter(ctx context.Context, req AdminLetterRequest) (*models.Letter, error) {
	letter, err := s.repo.Letter.GetByID(ctx, req.LetterID)
	if err != nil {
		return nil, err
	}

	letter.Name = req.Name
	letter.EnglishMessage = req.EnglishMessage
	letter.ArabicMessage = req.ArabicMessage
	letter.TiktokLink = media.NormalizeTikTok(req.TiktokLink)

	if err := s.repo.Letter.Update(ctx, letter); err != nil {
		return nil, err
	}

	return letter, nil
}

func (s *contentService) CreateGalleryItem(ctx context.Context, req AdminGalleryRequest) (*models.GalleryItem, error) {
	now := time.Now()
	item := &models.GalleryItem{
		Name:       req.Name,
		Caption:    req.Caption,
		Category:   req.Category,
		ImageURL:   req.ImageURL,
		Status:     models.StatusApproved,
		ReviewedAt: &now,
	}

	uploadedObject := ""
	if req.Category == models.CategoryVideos {
		item.VideoURL = media.NormalizeVideoURL(req.VideoURL)
	} else if len(req.ImageData) > 0 {
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

func (s *contentService) UpdateGalleryItem(ctx context.Context, req AdminGalleryRequest) (*models.GalleryItem, error) {
	item, err := s.repo.Gallery.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	previousImageURL := item.ImageURL

	item.Name = req.Name
	item.Caption = req.Caption
	item.Category = req.Category
	if req.Category == models.CategoryVideos {
		item.VideoURL = media.NormalizeVideoURL(req.VideoURL)
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}
	if len(req.ImageData) > 0 {
		_, imageURL, err := s.storage.UploadImage(ctx, "gallery",
			req.ImageContentType, bytes.NewReader(req.ImageData), int64(len(req.ImageData)))
		if err != nil {
			return nil, fmt.Errorf("failed to store gallery image: %w", err)
		}
		item.ImageURL = imageURL
	}

	if err := s.repo.Gallery.Update(ctx, item); err != nil {
		return nil, err
	}

	// the replaced object is unreferenced once the row points elsewhere
	if previousImageURL != "" && previousImageURL != item.ImageURL {
		s.removeStoredImage(ctx, previousImageURL)
	}

	return item, nil
}

// DeleteGalleryItem removes the row and then its stored image, if any.
func (s *contentService) DeleteGalleryItem(ctx context.Context, itemID string) error {
	item, err := s.repo.Gallery.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.Gallery.Delete(ctx, itemID); err != nil {
		return err
	}

	if item.ImageURL != "" {
		s.removeStoredImage(ctx, item.ImageURL)
	}

	return nil
}

func (s *contentService) CreateVideoItem(ctx context.Context, req VideoItemRequest) (*models.VideoItem, error) {
	item := &models.VideoItem{
		CollectionID: req.CollectionID,
		Title:        req.Title,
		VideoURL:     media.NormalizeVideoURL(req.VideoURL),
	}

	if err := s.repo.Video.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *contentService) UpdateVideoItem(ctx context.Context, req VideoItemRequest) (*models.VideoItem, error) {
	item := &models.VideoItem{
		VideoID:  req.VideoID,
		Title:    req.Title,
		VideoURL: media.NormalizeVideoURL(req.VideoURL),
	}

	if err := s.repo.Video.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
