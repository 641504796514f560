package product

import (
	"context"

	"shopspot-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for the product catalog.
type Service interface {
	List(ctx context.Context, params ListParams) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Latest(ctx context.Context) ([]Product, error)
	Featured(ctx context.Context) ([]Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, id uint, params UpdateParams) (*Product, error)
	Delete(ctx context.Context, id uint) error
	ToggleFeatured(ctx context.Context, id uint) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, params ListParams) ([]Product, error) {
	return s.repo.List(ctx, params)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Latest(ctx context.Context) ([]Product, error) {
	return s.repo.Latest(ctx, 5)
}

func (s *service) Featured(ctx context.Context) ([]Product, error) {
	return s.repo.Featured(ctx)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *service) Create(ctx context.Context, p Product) (*Product, error) {
	if p.Name == "" || p.Category == "" || p.Description == "" || p.Price <= 0 || p.Stock < 0 {
		return nil, ErrMissingFields
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.Uint("product_id", created.ID),
		zap.String("name", created.Name),
	)

	return created, nil
}

func (s *service) Update(ctx context.Context, id uint, params UpdateParams) (*Product, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ToggleFeatured(ctx context.Context, id uint) (*Product, error) {
	return s.repo.ToggleFeatured(ctx, id)
}
