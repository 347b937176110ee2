package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Dwieght/deer-sub000/internal/models"
)

type galleryRepository struct {
	db *sqlx.DB
}

func NewGalleryRepository(db *sqlx.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	if item.ItemID == "" {
		item.ItemID = uuid.New().String()
	}
	item.CreatedAt = time.Now()

	query := `
		INSERT INTO gallery_items (item_id, name, caption, category, image_url, video_url, status, created_at, reviewed_at)
		VALUES (:item_id, :name, :caption, :category, :image_url, :video_url, :status, :created_at, :reviewed_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("failed to create gallery item: %w", err)
	}

	return nil
}

func (r *galleryRepository) GetByID(ctx context.Context, itemID string) (*models.GalleryItem, error) {
	var item models.GalleryItem

	query := `SELECT * FROM gallery_items WHERE item_id = $1`

	err := r.db.GetContext(ctx, &item, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get gallery item: %w", err)
	}

	return &item, nil
}

// ListApproved returns approved items, optionally filtered by category.
func (r *galleryRepository) ListApproved(ctx context.Context, category string) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	var err error

	if category != "" {
		query := `SELECT * FROM gallery_items WHERE status = 'APPROVED' AND category = $1 ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &items, query, category)
	} else {
		query := `SELECT * FROM gallery_items WHERE status = 'APPROVED' ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &items, query)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list approved gallery items: %w", err)
	}

	return items, nil
}

func (r *galleryRepository) ListPending(ctx context.Context) ([]models.GalleryItem, error) {
	var items []models.GalleryItem

	query := `SELECT * FROM gallery_items WHERE status = 'PENDING' ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &items, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending gallery items: %w", err)
	}

	return items, nil
}

func (r *galleryRepository) Update(ctx context.Context, item *models.GalleryItem) error {
	query := `
		UPDATE gallery_items SET
			name = :name,
			caption = :caption,
			category = :category,
			image_url = :image_url,
			video_url = :video_url
		WHERE item_id = :item_id
	`

	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("failed to update gallery item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *galleryRepository) Delete(ctx context.Context, itemID string) error {
	query := `DELETE FROM gallery_items WHERE item_id = $1`

	result, err := r.db.ExecContext(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
