package coupon

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, code string, amount int64) (*Coupon, error)
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]Coupon, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, code string, amount int64) (*Coupon, error) {
	var c Coupon
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO coupons (code, amount)
		VALUES ($1, $2)
		RETURNING id, code, amount, created_at
	`, code, amount).Scan(&c.ID, &c.Code, &c.Amount, &c.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrCodeExists
		}
		return nil, err
	}

	return &c, nil
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Coupon, error) {
	var c Coupon
	err := r.db.QueryRowContext(ctx, `
		SELECT id, code, amount, created_at FROM coupons WHERE code = $1
	`, code).Scan(&c.ID, &c.Code, &c.Amount, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCouponNotFound
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Coupon, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, code, amount, created_at FROM coupons ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []Coupon
	for rows.Next() {
		var c Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.Amount, &c.CreatedAt); err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}

	return coupons, rows.Err()
}
