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

type letterRepository struct {
	db *sqlx.DB
}

func NewLetterRepository(db *sqlx.DB) LetterRepository {
	return &letterRepository{db: db}
}

func (r *letterRepository) Create(ctx context.Context, letter *models.Letter) error {
	if letter.LetterID == "" {
		letter.LetterID = uuid.New().String()
	}
	letter.CreatedAt = time.Now()

	query := `
		INSERT INTO letters (letter_id, name, english_message, arabic_message, tiktok_link, status, created_at, reviewed_at)
		VALUES (:letter_id, :name, :english_message, :arabic_message, :tiktok_link, :status, :created_at, :reviewed_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, letter)
	if err != nil {
		return fmt.Errorf("failed to create letter: %w", err)
	}

	return nil
}

func (r *letterRepository) GetByID(ctx context.Context, letterID string) (*models.Letter, error) {
	var letter models.Letter

	query := `SELECT * FROM letters WHERE letter_id = $1`

	err := r.db.GetContext(ctx, &letter, query, letterID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get letter: %w", err)
	}

	return &letter, nil
}

func (r *letterRepository) ListApproved(ctx context.Context) ([]models.Letter, error) {
	var letters []models.Letter

	query := `SELECT * FROM letters WHERE status = 'APPROVED' ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &letters, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved letters: %w", err)
	}

	return letters, nil
}

func (r *letterRepository) ListPending(ctx context.Context) ([]models.Letter, error) {
	var letters []models.Letter

	query := `SELECT * FROM letters WHERE status = 'PENDING' ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &letters, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending letters: %w", err)
	}

	return letters, nil
}

// Update changes content fields only; status and reviewed_at are owned by
// the moderation flow.
func (r *letterRepository) Update(ctx context.Context, letter *models.Letter) error {
	query := `
		UPDATE letters SET
			name = :name,
			english_message = :english_message,
			arabic_message = :arabic_message,
			tiktok_link = :tiktok_link
		WHERE letter_id = :letter_id
	`

	result, err := r.db.NamedExecContext(ctx, query, letter)
	if err != nil {
		return fmt.Errorf("failed to update letter: %w", err)
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

func (r *letterRepository) Delete(ctx context.Context, letterID string) error {
	query := `DELETE FROM letters WHERE letter_id = $1`

	result, err := r.db.ExecContext(ctx, query, letterID)
	if err != nil {
		return fmt.Errorf("failed to delete letter: %w", err)
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
