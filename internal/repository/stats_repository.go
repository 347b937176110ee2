package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// statsTables are the content tables surfaced on the admin dashboard.
var statsTables = []string{
	"letters",
	"gallery_items",
	"announcements",
	"contact_messages",
	"join_requests",
	"product_feedback",
	"products",
	"orders",
	"payment_submissions",
	"video_collections",
}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountRows(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(statsTables))

	for _, table := range statsTables {
		var count int
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)
		if err := r.db.GetContext(ctx, &count, query); err != nil {
			return nil, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		counts[table] = count
	}

	return counts, nil
}
