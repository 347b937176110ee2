package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Dwieght/deer-sub000/internal/models"
)

type videoRepository struct {
	db *sqlx.DB
}

func NewVideoRepository(db *sqlx.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) CreateCollection(ctx context.Context, c *models.VideoCollection) error {
	if c.CollectionID == "" {
		c.CollectionID = uuid.New().String()
	}
	c.CreatedAt = time.Now()

	query := `
		INSERT INTO video_collections (collection_id, title, description, created_at)
		VALUES (:collection_id, :title, :description, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to create video collection: %w", err)
	}

	return nil
}

// ListCollections returns collections with their items attached.
func (r *videoRepository) ListCollections(ctx context.Context) ([]models.VideoCollection, error) {
	var collections []models.VideoCollection

	query := `SELECT * FROM video_collections ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &collections, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list video collections: %w", err)
	}

	var items []models.VideoItem
	itemQuery := `SELECT * FROM video_items ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &items, itemQuery); err != nil {
		return nil, fmt.Errorf("failed to list video items: %w", err)
	}

	byCollection := make(map[string][]models.VideoItem)
	for _, item := range items {
		byCollection[item.CollectionID] = append(byCollection[item.CollectionID], item)
	}
	for i := range collections {
		collections[i].Videos = byCollection[collections[i].CollectionID]
	}

	return collections, nil
}

func (r *videoRepository) UpdateCollection(ctx context.Context, c *models.VideoCollection) error {
	query := `
		UPDATE video_collections SET
			title = :title,
			description = :description
		WHERE collection_id = :collection_id
	`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update video collection: %w", err)
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

// DeleteCollection relies on ON DELETE CASCADE for the collection's items.
func (r *videoRepository) DeleteCollection(ctx context.Context, collectionID string) error {
	query := `DELETE FROM video_collections WHERE collection_id = $1`

	result, err := r.db.ExecContext(ctx, query, collectionID)
	if err != nil {
		return fmt.Errorf("failed to delete video collection: %w", err)
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

func (r *videoRepository) CreateItem(ctx context.Context, v *models.VideoItem) error {
	if v.VideoID == "" {
		v.VideoID = uuid.New().String()
	}
	v.CreatedAt = time.Now()

	query := `
		INSERT INTO video_items (video_id, collection_id, title, video_url, created_at)
		VALUES (:video_id, :collection_id, :title, :video_url, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, v)
	if err != nil {
		return fmt.Errorf("failed to create video item: %w", err)
	}

	return nil
}

func (r *videoRepository) UpdateItem(ctx context.Context, v *models.VideoItem) error {
	query := `
		UPDATE video_items SET
			title = :title,
			video_url = :video_url
		WHERE video_id = :video_id
	`

	result, err := r.db.NamedExecContext(ctx, query, v)
	if err != nil {
		return fmt.Errorf("failed to update video item: %w", err)
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

func (r *videoRepository) DeleteItem(ctx context.Context, videoID string) error {
	query := `DELETE FROM video_items WHERE video_id = $1`

	result, err := r.db.ExecContext(ctx, query, videoID)
	if err != nil {
		return fmt.Errorf("failed to delete video item: %w", err)
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
