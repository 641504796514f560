package user

import (
	"context"

	"go.uber.org/zap"

	"shopspot-be/internal/logger"
)

type Service interface {
	Register(ctx context.Context, name, email, password, gender string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, email, password, gender string) (*User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	u, err := s.repo.Create(ctx, name, email, hash, gender)
	if err != nil {
		return nil, "", err
	}

	token, err := GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		return nil, "", err
	}

	logger.FromCtx(ctx).Info("user registered", zap.Uint("user_id", u.ID))
	return u, token, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !CheckPasswordHash(password, u.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
