package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"shopspot-be/internal/cart"
	"shopspot-be/internal/logger"
	"shopspot-be/internal/order"
	"shopspot-be/internal/payment"

	"go.uber.org/zap"
)

var (
	// -- Validation & Input --
	ErrNotAuthenticated      = errors.New("please login to place order")
	ErrPaymentNotInitialized = errors.New("payment has not been initialized")
	ErrEmptyCart             = errors.New("cart is empty")

	// -- Payment --
	ErrPaymentNotConfirmed = errors.New("payment was not confirmed")
	ErrAmountMismatch      = errors.New("payment amount does not match cart total")

	// -- Concurrency --
	ErrCheckoutInProgress = errors.New("a checkout is already in progress")
)

// CartStore is the slice of the cart service the orchestrator needs.
type CartStore interface {
	Get(ctx context.Context, userID uint) (*cart.Cart, error)
	Reset(ctx context.Context, userID uint) error
}

// OrderCreator persists orders from priced cart snapshots.
type OrderCreator interface {
	Create(ctx context.Context, params order.CreateParams) (*order.Order, error)
}

// PaymentVerifier observes the confirmation outcome of a payment intent.
type PaymentVerifier interface {
	RetrieveIntent(ctx context.Context, intentID string) (*payment.Intent, error)
}

// Orchestrator sequences a checkout: observe payment confirmation, create the
// order, then reset the cart. The cart is only ever cleared after the order is
// confirmed persisted, and an order is only ever created after the payment
// intent reports success.
type Orchestrator struct {
	payments PaymentVerifier
	orders   OrderCreator
	cart     CartStore

	mu       sync.Mutex
	inFlight map[uint]bool
}

func NewOrchestrator(payments PaymentVerifier, orders OrderCreator, cartStore CartStore) *Orchestrator {
	return &Orchestrator{
		payments: payments,
		orders:   orders,
		cart:     cartStore,
		inFlight: make(map[uint]bool),
	}
}

// Run performs one checkout attempt for the shopper. Checkout is single-flight
// per shopper: a second attempt while one is in flight is rejected outright.
func (o *Orchestrator) Run(ctx context.Context, userID uint, intentID string) (*order.Order, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	if intentID == "" {
		return nil, ErrPaymentNotInitialized
	}

	if !o.acquire(userID) {
		return nil, ErrCheckoutInProgress
	}
	defer o.release(userID)

	log := logger.FromCtx(ctx).With(
		zap.Uint("user_id", userID),
		zap.String("intent_id", intentID),
	)

	// Payment confirmation must be observed before any order is attempted.
	intent, err := o.payments.RetrieveIntent(ctx, intentID)
	if err != nil {
		log.Warn("payment confirmation lookup failed", zap.Error(err))
		return nil, err
	}
	if intent.Status != payment.IntentStatusSucceeded {
		log.Warn("payment not confirmed", zap.String("status", intent.Status))
		return nil, fmt.Errorf("%w: status %s", ErrPaymentNotConfirmed, intent.Status)
	}

	c, err := o.cart.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// The intent was created before the order; the cart may have changed in
	// between. A confirmed payment only buys the cart it was priced for.
	if intent.Amount != c.Totals.Total {
		log.Warn("payment amount mismatch",
			zap.Int64("intent_amount", intent.Amount),
			zap.Int64("cart_total", c.Totals.Total),
		)
		return nil, fmt.Errorf("%w: paid %d, cart total %d", ErrAmountMismatch, intent.Amount, c.Totals.Total)
	}

	items := make([]order.Item, 0, len(c.Items))
	for _, line := range c.Items {
		items = append(items, order.Item{
			ProductID: line.ProductID,
			Name:      line.Name,
			Photo:     line.Photo,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	placed, err := o.orders.Create(ctx, order.CreateParams{
		UserID: userID,
		Items:  items,
		ShippingInfo: order.ShippingInfo{
			Address: c.ShippingInfo.Address,
			City:    c.ShippingInfo.City,
			State:   c.ShippingInfo.State,
			Country: c.ShippingInfo.Country,
			PinCode: c.ShippingInfo.PinCode,
			Phone:   c.ShippingInfo.Phone,
		},
		SubTotal:        c.Totals.SubTotal,
		Tax:             c.Totals.Tax,
		ShippingCharges: c.Totals.ShippingCharges,
		Discount:        c.Totals.Discount,
		Total:           c.Totals.Total,
	})
	if err != nil {
		// Order creation failed: the cart stays untouched so the shopper can
		// retry.
		log.Error("order creation failed", zap.Error(err))
		return nil, err
	}

	if err := o.cart.Reset(ctx, userID); err != nil {
		// The order exists; a stale cart is recoverable, losing the order is
		// not. Report success and let the next cart read surface the leftovers.
		log.Warn("cart reset failed after successful order",
			zap.String("order_id", placed.ID.String()),
			zap.Error(err),
		)
	}

	log.Info("checkout completed", zap.String("order_id", placed.ID.String()))

	return placed, nil
}

func (o *Orchestrator) acquire(userID uint) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.inFlight[userID] {
		return false
	}
	o.inFlight[userID] = true
	return true
}

func (o *Orchestrator) release(userID uint) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inFlight, userID)
}
