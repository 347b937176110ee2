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

// recentOrderWindow bounds the suffix search for public order lookups.
const recentOrderWindow = 200

type orderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *models.Order) error {
	if o.OrderID == "" {
		o.OrderID = uuid.New().String()
	}
	o.CreatedAt = time.Now()

	query := `
		INSERT INTO orders (order_id, name, phone, product_id, quantity, total,
			region, province, city, barangay, postal_code, street, house_number,
			address_label, gcash_reference, status, created_at)
		VALUES (:order_id, :name, :phone, :product_id, :quantity, :total,
			:region, :province, :city, :barangay, :postal_code, :street, :house_number,
			:address_label, :gcash_reference, :status, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, o)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order

	query := `SELECT * FROM orders WHERE order_id = $1`

	err := r.db.GetContext(ctx, &order, query, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// FindPublicByRef accepts a full order id or a short suffix of one. Suffix
// lookups only scan the most recent orders so stale references cannot be
// fished for, and the returned view carries no address fields.
func (r *orderRepository) FindPublicByRef(ctx context.Context, ref string) (*models.PublicOrder, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return nil, ErrNotFound
	}

	if _, err := uuid.Parse(ref); err == nil {
		var order models.PublicOrder
		query := `SELECT order_id, name, product_id, quantity, total, status, created_at FROM orders WHERE order_id = $1`
		err := r.db.GetContext(ctx, &order, query, ref)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get order by id: %w", err)
		}
		return &order, nil
	}

	var recent []models.PublicOrder
	query := `
		SELECT order_id, name, product_id, quantity, total, status, created_at
		FROM orders ORDER BY created_at DESC LIMIT $1
	`
	if err := r.db.SelectContext(ctx, &recent, query, recentOrderWindow); err != nil {
		return nil, fmt.Errorf("failed to scan recent orders: %w", err)
	}

	for i := range recent {
		if strings.HasSuffix(strings.ToLower(recent[i].OrderID), ref) {
			return &recent[i], nil
		}
	}

	return nil, ErrNotFound
}

func (r *orderRepository) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order

	query := `SELECT * FROM orders ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &orders, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, o *models.Order) error {
	query := `
		UPDATE orders SET
			name = :name,
			phone = :phone,
			quantity = :quantity,
			total = :total,
			region = :region,
			province = :province,
			city = :city,
			barangay = :barangay,
			postal_code = :postal_code,
			street = :street,
			house_number = :house_number,
			address_label = :address_label,
			gcash_reference = :gcash_reference,
			status = :status
		WHERE order_id = :order_id
	`

	result, err := r.db.NamedExecContext(ctx, query, o)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
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

func (r *orderRepository) Delete(ctx context.Context, orderID string) error {
	query := `DELETE FROM orders WHERE order_id = $1`

	result, err := r.db.ExecContext(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
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
