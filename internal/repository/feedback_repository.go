package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Dwieght/deer-sub000/internal/models"
)

type feedbackRepository struct {
	db *sqlx.DB
}

func NewFeedbackRepository(db *sqlx.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *models.ProductFeedback) error {
	if fb.FeedbackID == "" {
		fb.FeedbackID = uuid.New().String()
	}
	fb.CreatedAt = time.Now()

	query := `
		INSERT INTO product_feedback (feedback_id, product_id, full_name, message, rating, status, created_at, reviewed_at)
		VALUES (:feedback_id, :product_id, :full_name, :message, :rating, :status, :created_at, :reviewed_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, fb)
	if err != nil {
		return fmt.Errorf("failed to create product feedback: %w", err)
	}

	return nil
}

func (r *feedbackRepository) ListApprovedByProduct(ctx context.Context, productID string) ([]models.ProductFeedback, error) {
	var feedback []models.ProductFeedback

	query := `SELECT * FROM product_feedback WHERE status = 'APPROVED' AND product_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &feedback, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved feedback: %w", err)
	}

	return feedback, nil
}

func (r *feedbackRepository) ListPending(ctx context.Context) ([]models.ProductFeedback, error) {
	var feedback []models.ProductFeedback

	query := `SELECT * FROM product_feedback WHERE status = 'PENDING' ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &feedback, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending feedback: %w", err)
	}

	return feedback, nil
}
