package stats

import (
	"context"
	"database/sql"
)

type Repository interface {
	TotalRevenue(ctx context.Context) (int64, error)
	RevenueByMonth(ctx context.Context) ([]MonthlyRevenue, error)
	OrdersByStatus(ctx context.Context) (map[string]int, error)
	Counts(ctx context.Context) (orders, products, users, coupons int, err error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) TotalRevenue(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total), 0) FROM orders
	`).Scan(&total)
	return total, err
}

// RevenueByMonth returns one row per month for the trailing twelve months,
// oldest first. Months without orders are absent from the result.
func (r *repository) RevenueByMonth(ctx context.Context) ([]MonthlyRevenue, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
		       COALESCE(SUM(total), 0)
		FROM orders
		WHERE created_at >= date_trunc('month', now()) - interval '11 months'
		GROUP BY month
		ORDER BY month
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []MonthlyRevenue
	for rows.Next() {
		var m MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Revenue); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *repository) OrdersByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM orders GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *repository) Counts(ctx context.Context) (orders, products, users, coupons int, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM coupons)
	`).Scan(&orders, &products, &users, &coupons)
	return
}
