package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Dwieght/deer-sub000/internal/models"
)

// Contact messages and join requests only exist to be reviewed: the public
// creates them, admins approve or decline them from the queue. No public
// read path and no admin edit path.

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = uuid.New().String()
	}
	msg.CreatedAt = time.Now()

	query := `
		INSERT INTO contact_messages (message_id, name, email, type, message, status, created_at, reviewed_at)
		VALUES (:message_id, :name, :email, :type, :message, :status, :created_at, :reviewed_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, msg)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

func (r *contactRepository) ListPending(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage

	query := `SELECT * FROM contact_messages WHERE status = 'PENDING' ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &messages, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending contact messages: %w", err)
	}

	return messages, nil
}

type joinRepository struct {
	db *sqlx.DB
}

func NewJoinRepository(db *sqlx.DB) JoinRepository {
	return &joinRepository{db: db}
}

func (r *joinRepository) Create(ctx context.Context, req *models.JoinRequest) error {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	req.CreatedAt = time.Now()

	query := `
		INSERT INTO join_requests (request_id, name, email, status, created_at, reviewed_at)
		VALUES (:request_id, :name, :email, :status, :created_at, :reviewed_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, req)
	if err != nil {
		return fmt.Errorf("failed to create join request: %w", err)
	}

	return nil
}

func (r *joinRepository) ListPending(ctx context.Context) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest

	query := `SELECT * FROM join_requests WHERE status = 'PENDING' ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &requests, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending join requests: %w", err)
	}

	return requests, nil
}
