package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Dwieght/deer-sub000/internal/models"
)

type announcementRepository struct {
	db *sqlx.DB
}

func NewAnnouncementRepository(db *sqlx.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, a *models.Announcement) error {
	if a.AnnouncementID == "" {
		a.AnnouncementID = uuid.New().String()
	}

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO announcements (announcement_id, title, body, image_url, created_at, updated_at)
		VALUES (:announcement_id, :title, :body, :image_url, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	return nil
}

func (r *announcementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement

	query := `SELECT * FROM announcements ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &announcements, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	return announcements, nil
}

func (r *announcementRepository) Update(ctx context.Context, a *models.Announcement) error {
	a.UpdatedAt = time.Now()

	query := `
		UPDATE announcements SET
			title = :title,
			body = :body,
			image_url = :image_url,
			updated_at = :updated_at
		WHERE announcement_id = :announcement_id
	`

	result, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
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

func (r *announcementRepository) Delete(ctx context.Context, announcementID string) error {
	query := `DELETE FROM announcements WHERE announcement_id = $1`

	result, err := r.db.ExecContext(ctx, query, announcementID)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
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
