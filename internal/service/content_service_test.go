package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Dwieght/deer-sub000/internal/config"
	"github.com/Dwieght/deer-sub000/internal/models"
	"github.com/Dwieght/deer-sub000/internal/repository"
)

func galleryTestConfig() *config.Config {
	return &config.Config{
		MinIO: config.MinIO{
			BucketName: "deersub",
			PublicBase: "https://cdn.example.com",
		},
	}
}

func newContentEnv() (ContentService, *MockGalleryRepository, *MockStorage) {
	galleryRepo := new(MockGalleryRepository)
	store := new(MockStorage)
	svc := NewContentService(&repository.Repository{Gallery: galleryRepo}, galleryTestConfig(), store)
	return svc, galleryRepo, store
}

func TestContentService_DeleteGalleryItem(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New().String()

	t.Run("removes the row and its stored image", func(t *testing.T) {
		svc, galleryRepo, store := newContentEnv()

		galleryRepo.On("GetByID", ctx, itemID).Return(&models.GalleryItem{
			ItemID:   itemID,
			ImageURL: "https://cdn.example.com/deersub/gallery/2026/08/abc.jpg",
		}, nil)
		galleryRepo.On("Delete", ctx, itemID).Return(nil)
		store.On("DeleteImage", ctx, "gallery/2026/08/abc.jpg").Return(nil)

		err := svc.DeleteGalleryItem(ctx, itemID)

		assert.NoError(t, err)
		galleryRepo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("externally hosted image is left alone", func(t *testing.T) {
		svc, galleryRepo, store := newContentEnv()

		galleryRepo.On("GetByID", ctx, itemID).Return(&models.GalleryItem{
			ItemID:   itemID,
			ImageURL: "https://images.example.org/somewhere.jpg",
		}, nil)
		galleryRepo.On("Delete", ctx, itemID).Return(nil)

		err := svc.DeleteGalleryItem(ctx, itemID)

		assert.NoError(t, err)
		store.AssertNotCalled(t, "DeleteImage", mock.Anything, mock.Anything)
	})

	t.Run("object delete failure does not fail the operation", func(t *testing.T) {
		svc, galleryRepo, store := newContentEnv()

		galleryRepo.On("GetByID", ctx, itemID).Return(&models.GalleryItem{
			ItemID:   itemID,
			ImageURL: "https://cdn.example.com/deersub/gallery/2026/08/abc.jpg",
		}, nil)
		galleryRepo.On("Delete", ctx, itemID).Return(nil)
		store.On("DeleteImage", ctx, "gallery/2026/08/abc.jpg").
			Return(errors.New("connection reset"))

		err := svc.DeleteGalleryItem(ctx, itemID)

		assert.NoError(t, err)
	})

	t.Run("missing row deletes nothing", func(t *testing.T) {
		svc, galleryRepo, store := newContentEnv()

		galleryRepo.On("GetByID", ctx, itemID).Return(nil, repository.ErrNotFound)

		err := svc.DeleteGalleryItem(ctx, itemID)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		galleryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "DeleteImage", mock.Anything, mock.Anything)
	})
}

func TestContentService_UpdateGalleryItem_ReplacesImage(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New().String()

	svc, galleryRepo, store := newContentEnv()

	galleryRepo.On("GetByID", ctx, itemID).Return(&models.GalleryItem{
		ItemID:   itemID,
		Category: models.CategoryPhotos,
		ImageURL: "https://cdn.example.com/deersub/gallery/2026/07/old.jpg",
	}, nil)
	store.On("UploadImage", ctx, "gallery", "image/png", mock.Anything, int64(3)).
		Return("gallery/2026/08/new.png", "https://cdn.example.com/deersub/gallery/2026/08/new.png", nil)
	galleryRepo.On("Update", ctx, mock.AnythingOfType("*models.GalleryItem")).Return(nil)
	store.On("DeleteImage", ctx, "gallery/2026/07/old.jpg").Return(nil)

	item, err := svc.UpdateGalleryItem(ctx, AdminGalleryRequest{
		ItemID:           itemID,
		Name:             "Amal",
		Caption:          "Updated",
		Category:         models.CategoryPhotos,
		ImageData:        []byte("png"),
		ImageContentType: "image/png",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/deersub/gallery/2026/08/new.png", item.ImageURL)
	store.AssertExpectations(t)
}

func TestContentService_CreateGalleryItem_UploadRolledBackOnStoreFailure(t *testing.T) {
	ctx := context.Background()

	svc, galleryRepo, store := newContentEnv()

	store.On("UploadImage", ctx, "gallery", "image/jpeg", mock.Anything, int64(4)).
		Return("gallery/2026/08/orphan.jpg", "https://cdn.example.com/deersub/gallery/2026/08/orphan.jpg", nil)
	galleryRepo.On("Create", ctx, mock.AnythingOfType("*models.GalleryItem")).
		Return(errors.New("insert failed"))
	store.On("DeleteImage", ctx, "gallery/2026/08/orphan.jpg").Return(nil)

	item, err := svc.CreateGalleryItem(ctx, AdminGalleryRequest{
		Name:             "Amal",
		Caption:          "Fan art",
		Category:         models.CategoryArt,
		ImageData:        []byte("jpeg"),
		ImageContentType: "image/jpeg",
	})

	assert.Error(t, err)
	assert.Nil(t, item)
	store.AssertExpectations(t)
}
