package order

import (
	"context"

	"shopspot-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher emits order lifecycle events for downstream consumers
// (analytics, admin dashboard). Publishing is best-effort and never blocks an
// order operation.
type EventPublisher interface {
	OrderPlaced(o *Order)
	OrderStatusUpdated(orderID uuid.UUID, status Status)
}

type Service interface {
	Create(ctx context.Context, params CreateParams) (*Order, error)
	Get(ctx context.Context, id uuid.UUID, userID uint, isAdmin bool) (*Order, error)
	ListForUser(ctx context.Context, userID uint) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	events EventPublisher
}

// NewService creates a new order service. events may be nil when no broker is
// configured.
func NewService(repo Repository, events EventPublisher) Service {
	return &service{repo: repo, events: events}
}

// Create persists a new order from a priced cart snapshot. The item snapshots
// and stock deductions commit atomically with the order row.
func (s *service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.Uint("user_id", params.UserID),
		zap.Int("item_count", len(params.Items)),
	)

	if err := validateCreate(params); err != nil {
		log.Warn("order rejected", zap.Error(err))
		return nil, err
	}

	o := &Order{
		ID:              uuid.New(),
		UserID:          params.UserID,
		Items:           params.Items,
		ShippingInfo:    params.ShippingInfo,
		SubTotal:        params.SubTotal,
		Tax:             params.Tax,
		ShippingCharges: params.ShippingCharges,
		Discount:        params.Discount,
		Total:           params.Total,
		Status:          StatusProcessing,
	}

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	log.Info("order placed",
		zap.String("order_id", o.ID.String()),
		zap.Int64("total", o.Total),
	)

	if s.events != nil {
		s.events.OrderPlaced(o)
	}

	return o, nil
}

// Get returns an order; non-admins only see their own.
func (s *service) Get(ctx context.Context, id uuid.UUID, userID uint, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.UserID != userID {
		return nil, ErrUnauthorized
	}

	return o, nil
}

func (s *service) ListForUser(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]*Order, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus overwrites the status unconditionally; only membership in the
// declared set is checked, not transition legality.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", id.String()),
		zap.String("status", string(status)),
	)

	if s.events != nil {
		s.events.OrderStatusUpdated(id, status)
	}

	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validateCreate(params CreateParams) error {
	info := params.ShippingInfo
	if info.Address == "" || info.City == "" || info.Country == "" ||
		info.PinCode == "" || info.Phone == "" {
		return ErrMissingFields
	}
	if params.SubTotal <= 0 || params.Tax <= 0 || params.ShippingCharges <= 0 || params.Total <= 0 {
		return ErrMissingFields
	}
	return nil
}
