package stats

import (
	"context"
)

// GenderCounter is satisfied by the user repository.
type GenderCounter interface {
	CountByGender(ctx context.Context) (map[string]int, error)
}

type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type service struct {
	repo    Repository
	genders GenderCounter
}

func NewService(repo Repository, genders GenderCounter) Service {
	return &service{repo: repo, genders: genders}
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}

	var err error
	if d.TotalRevenue, err = s.repo.TotalRevenue(ctx); err != nil {
		return nil, err
	}
	if d.OrderCount, d.ProductCount, d.UserCount, d.CouponCount, err = s.repo.Counts(ctx); err != nil {
		return nil, err
	}
	if d.RevenueByMonth, err = s.repo.RevenueByMonth(ctx); err != nil {
		return nil, err
	}
	if d.OrdersByStatus, err = s.repo.OrdersByStatus(ctx); err != nil {
		return nil, err
	}
	if d.UsersByGender, err = s.genders.CountByGender(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
