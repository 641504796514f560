package cart

import (
	"context"
	"encoding/json"
	"strconv"

	"shopspot-be/internal/logger"

	"go.uber.org/zap"
)

// Store owns a shopper's cart state through an injected Storage port. Totals
// are recomputed after every mutation and on every read; they are never
// persisted as authoritative state.
type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Get loads the cart and recomputes its totals.
func (s *Store) Get(ctx context.Context, userID uint) (*Cart, error) {
	lines, err := s.loadLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	shipping, err := s.loadShipping(ctx, userID)
	if err != nil {
		return nil, err
	}

	discount, err := s.loadDiscount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Cart{
		Items:        lines,
		ShippingInfo: shipping,
		Totals:       ComputeTotals(lines, discount),
	}, nil
}

// AddItem merges a product into the cart. The quantity is clamped to the
// line's stock snapshot, both for new lines and when merging into an existing
// one. A product with no stock never enters the cart; every stored line keeps
// quantity >= 1.
func (s *Store) AddItem(ctx context.Context, userID uint, line Line) (*Cart, error) {
	if line.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if line.Stock < 1 {
		return nil, ErrOutOfStock
	}

	lines, err := s.loadLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i].Quantity = min(lines[i].Quantity+line.Quantity, lines[i].Stock)
			merged = true
			break
		}
	}
	if !merged {
		line.Quantity = min(line.Quantity, line.Stock)
		lines = append(lines, line)
	}

	logger.FromCtx(ctx).Debug("cart item added",
		zap.Uint("user_id", userID),
		zap.Uint("product_id", line.ProductID),
	)

	return s.saveLines(ctx, userID, lines)
}

// IncrementItem bumps a line's quantity by one. Incrementing at the stock
// snapshot is a no-op; incrementing a missing line is too.
func (s *Store) IncrementItem(ctx context.Context, userID, productID uint) (*Cart, error) {
	lines, err := s.loadLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].ProductID == productID && lines[i].Quantity < lines[i].Stock {
			lines[i].Quantity++
			break
		}
	}

	return s.saveLines(ctx, userID, lines)
}

// DecrementItem lowers a line's quantity by one; a line at quantity 1 is
// removed entirely.
func (s *Store) DecrementItem(ctx context.Context, userID, productID uint) (*Cart, error) {
	lines, err := s.loadLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		if lines[i].Quantity > 1 {
			lines[i].Quantity--
		} else {
			lines = append(lines[:i], lines[i+1:]...)
		}
		break
	}

	return s.saveLines(ctx, userID, lines)
}

// RemoveItem drops a line regardless of quantity.
func (s *Store) RemoveItem(ctx context.Context, userID, productID uint) (*Cart, error) {
	lines, err := s.loadLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}

	return s.saveLines(ctx, userID, kept)
}

// ApplyDiscount records a discount amount. The clamp against the cart total
// happens at recomputation, so a stale oversized discount can never surface a
// negative total.
func (s *Store) ApplyDiscount(ctx context.Context, userID uint, amount int64) (*Cart, error) {
	if amount < 0 {
		return nil, ErrInvalidDiscount
	}

	err := s.storage.Save(ctx, userID, RecordDiscount, []byte(strconv.FormatInt(amount, 10)))
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// RemoveDiscount resets the discount to zero. Client-side operation only, the
// coupon itself is untouched.
func (s *Store) RemoveDiscount(ctx context.Context, userID uint) (*Cart, error) {
	if err := s.storage.Delete(ctx, userID, RecordDiscount); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *Store) SaveShippingInfo(ctx context.Context, userID uint, info ShippingInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return s.storage.Save(ctx, userID, RecordShipping, data)
}

// Reset clears all lines, the shipping info and any applied discount.
func (s *Store) Reset(ctx context.Context, userID uint) error {
	logger.FromCtx(ctx).Info("cart reset", zap.Uint("user_id", userID))
	return s.storage.Delete(ctx, userID, RecordItems, RecordShipping, RecordDiscount)
}

func (s *Store) loadLines(ctx context.Context, userID uint) ([]Line, error) {
	data, err := s.storage.Load(ctx, userID, RecordItems)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Store) saveLines(ctx context.Context, userID uint, lines []Line) (*Cart, error) {
	data, err := json.Marshal(lines)
	if err != nil {
		return nil, err
	}
	if err := s.storage.Save(ctx, userID, RecordItems, data); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *Store) loadShipping(ctx context.Context, userID uint) (ShippingInfo, error) {
	data, err := s.storage.Load(ctx, userID, RecordShipping)
	if err != nil || data == nil {
		return ShippingInfo{}, err
	}

	var info ShippingInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return ShippingInfo{}, err
	}
	return info, nil
}

func (s *Store) loadDiscount(ctx context.Context, userID uint) (int64, error) {
	data, err := s.storage.Load(ctx, userID, RecordDiscount)
	if err != nil || data == nil {
		return 0, err
	}
	return strconv.ParseInt(string(data), 10, 64)
}
