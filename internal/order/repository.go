package order

import (
	"context"
	"database/sql"

	"shopspot-be/internal/logger"
	"shopspot-be/internal/product"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StockReducer decrements product stock inside the order transaction.
type StockReducer interface {
	ReduceStock(ctx context.Context, tx *sql.Tx, items []product.Reduction) error
}

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db    *sql.DB
	stock StockReducer
}

func NewRepository(db *sql.DB, stock StockReducer) Repository {
	return &repository{db: db, stock: stock}
}

// CreateOrderTx persists the order, its item snapshots and the per-item stock
// deductions in a single transaction, so an order and its stock impact cannot
// diverge.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Insert order
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, address, city, state, country, pin_code, phone,
			sub_total, tax, shipping_charges, discount, total, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		o.ID, o.UserID,
		o.ShippingInfo.Address, o.ShippingInfo.City, o.ShippingInfo.State,
		o.ShippingInfo.Country, o.ShippingInfo.PinCode, o.ShippingInfo.Phone,
		o.SubTotal, o.Tax, o.ShippingCharges, o.Discount, o.Total, o.Status,
	)
	if err != nil {
		return err
	}

	// 2. Insert item snapshots
	for i := range o.Items {
		item := &o.Items[i]
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, name, photo, price, quantity)
			VALUES ($1,$2,$3,$4,$5,$6)
			RETURNING id
		`, o.ID, item.ProductID, item.Name, item.Photo, item.Price, item.Quantity).
			Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	// 3. Deduct stock per item
	reductions := make([]product.Reduction, 0, len(o.Items))
	for _, item := range o.Items {
		reductions = append(reductions, product.Reduction{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	if err := r.stock.ReduceStock(ctx, tx, reductions); err != nil {
		logger.FromCtx(ctx).Error("stock reduction failed, rolling back order",
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
		return err
	}

	return tx.Commit()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT o.id, o.user_id, o.address, o.city, o.state, o.country, o.pin_code, o.phone,
		       o.sub_total, o.tax, o.shipping_charges, o.discount, o.total, o.status,
		       o.created_at, o.updated_at, u.name, u.email
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1
	`, id)

	o, err := scanOrder(row, true)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.Items, err = r.loadItems(ctx, o.ID); err != nil {
		return nil, err
	}

	return o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, address, city, state, country, pin_code, phone,
		       sub_total, tax, shipping_charges, discount, total, status,
		       created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectOrders(ctx, rows, false)
}

// ListAll joins the minimal user projection into each order for the admin
// console.
func (r *repository) ListAll(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.user_id, o.address, o.city, o.state, o.country, o.pin_code, o.phone,
		       o.sub_total, o.tax, o.shipping_charges, o.discount, o.total, o.status,
		       o.created_at, o.updated_at, u.name, u.email
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectOrders(ctx, rows, true)
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2",
		status, id,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Delete hard-deletes; order_items go with it via ON DELETE CASCADE.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *repository) loadItems(ctx context.Context, orderID uuid.UUID) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, name, photo, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Name, &it.Photo, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *repository) collectOrders(ctx context.Context, rows *sql.Rows, withUser bool) ([]*Order, error) {
	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows, withUser)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		items, err := r.loadItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner, withUser bool) (*Order, error) {
	var o Order
	dest := []interface{}{
		&o.ID, &o.UserID,
		&o.ShippingInfo.Address, &o.ShippingInfo.City, &o.ShippingInfo.State,
		&o.ShippingInfo.Country, &o.ShippingInfo.PinCode, &o.ShippingInfo.Phone,
		&o.SubTotal, &o.Tax, &o.ShippingCharges, &o.Discount, &o.Total, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	}
	if withUser {
		o.User = &UserInfo{}
		dest = append(dest, &o.User.Name, &o.User.Email)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &o, nil
}
