package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) TotalRevenue(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) RevenueByMonth(ctx context.Context) ([]MonthlyRevenue, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]MonthlyRevenue), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) OrdersByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(map[string]int), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Counts(ctx context.Context) (int, int, int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Int(2), args.Int(3), args.Error(4)
}

type mockGenderCounter struct {
	mock.Mock
}

func (m *mockGenderCounter) CountByGender(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(map[string]int), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_Dashboard(t *testing.T) {
	repo := new(mockRepository)
	genders := new(mockGenderCounter)
	svc := NewService(repo, genders)

	repo.On("TotalRevenue", mock.Anything).Return(int64(125000), nil)
	repo.On("Counts", mock.Anything).Return(12, 34, 56, 7, nil)
	repo.On("RevenueByMonth", mock.Anything).Return([]MonthlyRevenue{{Month: "2026-08", Revenue: 85000}}, nil)
	repo.On("OrdersByStatus", mock.Anything).Return(map[string]int{"Processing": 3}, nil)
	genders.On("CountByGender", mock.Anything).Return(map[string]int{"female": 7}, nil)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(125000), d.TotalRevenue)
	assert.Equal(t, 12, d.OrderCount)
	assert.Equal(t, 34, d.ProductCount)
	assert.Equal(t, 56, d.UserCount)
	assert.Equal(t, 7, d.CouponCount)
	assert.Len(t, d.RevenueByMonth, 1)
	assert.Equal(t, 3, d.OrdersByStatus["Processing"])
	assert.Equal(t, 7, d.UsersByGender["female"])
	repo.AssertExpectations(t)
	genders.AssertExpectations(t)
}

func TestService_Dashboard_RepoError(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, new(mockGenderCounter))

	repo.On("TotalRevenue", mock.Anything).Return(int64(0), errors.New("db down"))

	_, err := svc.Dashboard(context.Background())
	assert.Error(t, err)
}
