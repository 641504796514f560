package coupon

import (
	"context"
	"strings"

	"shopspot-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for coupons.
type Service interface {
	Create(ctx context.Context, code string, amount int64) (*Coupon, error)
	Apply(ctx context.Context, code string) (*Coupon, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]Coupon, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create stores a new coupon. Codes are normalized to uppercase so lookups are
// case-insensitive.
func (s *service) Create(ctx context.Context, code string, amount int64) (*Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" || amount <= 0 {
		return nil, ErrMissingFields
	}

	c, err := s.repo.Create(ctx, strings.ToUpper(code), amount)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to create coupon",
			zap.String("code", code),
			zap.Error(err),
		)
		return nil, err
	}

	logger.FromCtx(ctx).Info("coupon created",
		zap.String("code", c.Code),
		zap.Int64("amount", c.Amount),
	)

	return c, nil
}

// Apply looks a coupon up by code and returns it. Coupons are stateless and
// reusable across sessions; applying one does not mark it consumed.
func (s *service) Apply(ctx context.Context, code string) (*Coupon, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrMissingFields
	}

	c, err := s.repo.FindByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCouponNotFound
	}

	return c, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context) ([]Coupon, error) {
	return s.repo.List(ctx)
}
