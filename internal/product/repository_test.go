package product

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "category", "description", "price", "stock",
		"photo", "photo_ref", "featured", "created_at", "updated_at",
	}).AddRow(1, "Mug", "kitchen", "A mug", 1000, 5, "mug.jpg", "", false, now, now)
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT .+ FROM products WHERE id").
			WithArgs(1).
			WillReturnRows(productRows())

		p, err := repo.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Mug", p.Name)
		assert.Equal(t, 5, p.Stock)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .+ FROM products WHERE id").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	// A plain single-statement delete: order_items keep their snapshot copy
	// and carry no constraint back to the catalog row.
	t.Run("Deletes ordered product", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM products WHERE id").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM products WHERE id").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 99), ErrProductNotFound)
	})
}

func TestRepository_ReduceStock_Sequential(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products SET stock = stock - ").
		WithArgs(3, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE products SET stock = stock - ").
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	err = repo.ReduceStock(context.Background(), tx, []Reduction{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	})
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Ordering more than the available stock still succeeds and drives stock
// negative: the decrement is unconditional, preserving the source system's
// behavior. A corrected design would reject with an insufficient-stock error.
func TestRepository_ReduceStock_OversellDrivesStockNegative_KnownGap(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	// stock=2, ordering 5: the UPDATE carries no floor predicate
	mock.ExpectExec("UPDATE products SET stock = stock - ").
		WithArgs(5, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	err = repo.ReduceStock(context.Background(), tx, []Reduction{{ProductID: 1, Quantity: 5}})
	assert.NoError(t, err, "oversell is not rejected")
	assert.NoError(t, tx.Commit())
}

func TestRepository_ReduceStock_MissingProductAbortsRemaining(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products SET stock = stock - ").
		WithArgs(2, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	err = repo.ReduceStock(context.Background(), tx, []Reduction{
		{ProductID: 7, Quantity: 2},
		{ProductID: 8, Quantity: 1}, // never reached
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_WithFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT .+ FROM products WHERE name ILIKE .+ AND category = .+ LIMIT").
		WithArgs("%mug%", "kitchen", 20).
		WillReturnRows(productRows())

	products, err := repo.List(context.Background(), ListParams{Search: "mug", Category: "kitchen"})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestRepository_Categories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT DISTINCT category FROM products").
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("kitchen").AddRow("office"))

	cats, err := repo.Categories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"kitchen", "office"}, cats)
}

func TestRepository_ToggleFeatured_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("UPDATE products SET featured = NOT featured").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.ToggleFeatured(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
