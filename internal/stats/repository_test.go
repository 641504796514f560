package stats

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_TotalRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\) FROM orders`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(125000))

	total, err := repo.TotalRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(125000), total)
}

func TestRepository_RevenueByMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT to_char").
		WillReturnRows(sqlmock.NewRows([]string{"month", "revenue"}).
			AddRow("2026-07", 40000).
			AddRow("2026-08", 85000))

	months, err := repo.RevenueByMonth(context.Background())
	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, "2026-07", months[0].Month)
	assert.Equal(t, int64(85000), months[1].Revenue)
}

func TestRepository_OrdersByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT status, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("Processing", 3).
			AddRow("Delivered", 9))

	counts, err := repo.OrdersByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Processing": 3, "Delivered": 9}, counts)
}

func TestRepository_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"orders", "products", "users", "coupons"}).
			AddRow(12, 34, 56, 7))

	orders, products, users, coupons, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, orders)
	assert.Equal(t, 34, products)
	assert.Equal(t, 56, users)
	assert.Equal(t, 7, coupons)
}
