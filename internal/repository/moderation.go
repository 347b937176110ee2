package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Kind names one of the content tables that share the moderation lifecycle:
// rows are born PENDING, approve flips them to APPROVED with a review
// timestamp, decline removes them outright.
type Kind string

const (
	KindLetters         Kind = "letters"
	KindGalleryItems    Kind = "gallery_items"
	KindContactMessages Kind = "contact_messages"
	KindJoinRequests    Kind = "join_requests"
	KindProductFeedback Kind = "product_feedback"
)

type kindConfig struct {
	table string
	idCol string
}

// kindConfigs is the only per-kind wiring the engine needs. The table and
// id column are compiled into the query text, never taken from request
// input, so Kind values outside this map are rejected up front.
var kindConfigs = map[Kind]kindConfig{
	KindLetters:         {table: "letters", idCol: "letter_id"},
	KindGalleryItems:    {table: "gallery_items", idCol: "item_id"},
	KindContactMessages: {table: "contact_messages", idCol: "message_id"},
	KindJoinRequests:    {table: "join_requests", idCol: "request_id"},
	KindProductFeedback: {table: "product_feedback", idCol: "feedback_id"},
}

type moderationRepository struct {
	db *sqlx.DB
}

func NewModerationRepository(db *sqlx.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

// Approve marks the row APPROVED and stamps reviewed_at. Re-approving an
// already approved row just refreshes the stamp; only a missing row errors.
func (r *moderationRepository) Approve(ctx context.Context, kind Kind, id string) error {
	cfg, ok := kindConfigs[kind]
	if !ok {
		return fmt.Errorf("unknown moderation kind: %s", kind)
	}

	query := fmt.Sprintf(
		`UPDATE %s SET status = 'APPROVED', reviewed_at = NOW() WHERE %s = $1`,
		cfg.table, cfg.idCol,
	)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to approve %s: %w", kind, err)
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

// Decline deletes the row. There is no retained "rejected" state.
func (r *moderationRepository) Decline(ctx context.Context, kind Kind, id string) error {
	cfg, ok := kindConfigs[kind]
	if !ok {
		return fmt.Errorf("unknown moderation kind: %s", kind)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, cfg.table, cfg.idCol)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to decline %s: %w", kind, err)
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
