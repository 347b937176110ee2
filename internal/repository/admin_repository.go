package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Dwieght/deer-sub000/internal/models"
)

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

// GetByEmail looks the credential up case-insensitively.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var admin models.AdminUser

	query := `SELECT * FROM admin_users WHERE LOWER(email) = LOWER($1)`

	err := r.db.GetContext(ctx, &admin, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return &admin, nil
}

// Upsert inserts a credential or replaces the stored hash for an existing
// email. Exactly one record exists per email.
func (r *adminRepository) Upsert(ctx context.Context, email, passwordHash string) (*models.AdminUser, error) {
	admin := models.AdminUser{
		AdminID:      uuid.New().String(),
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	query := `
		INSERT INTO admin_users (admin_id, email, password_hash, created_at)
		VALUES (:admin_id, :email, :password_hash, :created_at)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
	`

	_, err := r.db.NamedExecContext(ctx, query, admin)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert admin user: %w", err)
	}

	return r.GetByEmail(ctx, admin.Email)
}
