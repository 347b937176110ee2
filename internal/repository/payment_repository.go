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

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateQRCode(ctx context.Context, qr *models.PaymentQRCode) error {
	if qr.QRCodeID == "" {
		qr.QRCodeID = uuid.New().String()
	}
	qr.CreatedAt = time.Now()

	query := `
		INSERT INTO payment_qr_codes (qr_code_id, label, image_url, active, created_at)
		VALUES (:qr_code_id, :label, :image_url, :active, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, qr)
	if err != nil {
		return fmt.Errorf("failed to create QR code: %w", err)
	}

	return nil
}

func (r *paymentRepository) GetQRCodeByID(ctx context.Context, qrCodeID string) (*models.PaymentQRCode, error) {
	var qr models.PaymentQRCode

	query := `SELECT * FROM payment_qr_codes WHERE qr_code_id = $1`

	err := r.db.GetContext(ctx, &qr, query, qrCodeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get QR code: %w", err)
	}

	return &qr, nil
}

func (r *paymentRepository) ListQRCodes(ctx context.Context) ([]models.PaymentQRCode, error) {
	var codes []models.PaymentQRCode

	query := `SELECT * FROM payment_qr_codes ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &codes, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list QR codes: %w", err)
	}

	return codes, nil
}

func (r *paymentRepository) UpdateQRCode(ctx context.Context, qr *models.PaymentQRCode) error {
	query := `
		UPDATE payment_qr_codes SET
			label = :label,
			image_url = :image_url,
			active = :active
		WHERE qr_code_id = :qr_code_id
	`

	result, err := r.db.NamedExecContext(ctx, query, qr)
	if err != nil {
		return fmt.Errorf("failed to update QR code: %w", err)
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

// DeleteQRCode unlinks dependent payment submissions before deleting the
// code itself. Unlink must run first so the delete never orphans a
// foreign key; the submissions themselves are kept.
func (r *paymentRepository) DeleteQRCode(ctx context.Context, qrCodeID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE payment_submissions SET qr_code_id = NULL WHERE qr_code_id = $1`, qrCodeID)
	if err != nil {
		return fmt.Errorf("failed to unlink payment submissions: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM payment_qr_codes WHERE qr_code_id = $1`, qrCodeID)
	if err != nil {
		return fmt.Errorf("failed to delete QR code: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit QR code delete: %w", err)
	}

	return nil
}

func (r *paymentRepository) CreateSubmission(ctx context.Context, sub *models.PaymentSubmission) error {
	if sub.SubmissionID == "" {
		sub.SubmissionID = uuid.New().String()
	}
	sub.CreatedAt = time.Now()

	query := `
		INSERT INTO payment_submissions (submission_id, sender_name, reference_number, amount, qr_code_id, matched, matched_at, created_at)
		VALUES (:submission_id, :sender_name, :reference_number, :amount, :qr_code_id, :matched, :matched_at, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, sub)
	if err != nil {
		return fmt.Errorf("failed to create payment submission: %w", err)
	}

	return nil
}

func (r *paymentRepository) GetSubmissionByID(ctx context.Context, submissionID string) (*models.PaymentSubmission, error) {
	var sub models.PaymentSubmission

	query := `SELECT * FROM payment_submissions WHERE submission_id = $1`

	err := r.db.GetContext(ctx, &sub, query, submissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment submission: %w", err)
	}

	return &sub, nil
}

func (r *paymentRepository) ListSubmissions(ctx context.Context) ([]models.PaymentSubmission, error) {
	var subs []models.PaymentSubmission

	query := `SELECT * FROM payment_submissions ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &subs, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment submissions: %w", err)
	}

	return subs, nil
}

func (r *paymentRepository) UpdateSubmission(ctx context.Context, sub *models.PaymentSubmission) error {
	query := `
		UPDATE payment_submissions SET
			sender_name = :sender_name,
			reference_number = :reference_number,
			amount = :amount,
			matched = :matched,
			matched_at = :matched_at
		WHERE submission_id = :submission_id
	`

	result, err := r.db.NamedExecContext(ctx, query, sub)
	if err != nil {
		return fmt.Errorf("failed to update payment submission: %w", err)
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

func (r *paymentRepository) DeleteSubmission(ctx context.Context, submissionID string) error {
	query := `DELETE FROM payment_submissions WHERE submission_id = $1`

	result, err := r.db.ExecContext(ctx, query, submissionID)
	if err != nil {
		return fmt.Errorf("failed to delete payment submission: %w", err)
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
