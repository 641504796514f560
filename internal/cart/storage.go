package cart

import "context"

// Record names mirror the fixed keys the storefront client persists under.
const (
	RecordItems    = "cartItems"
	RecordShipping = "shippingInfo"
	RecordDiscount = "discount"
)

// Storage is the persistence port behind the Store. Implementations hold one
// durable record per (user, name) pair. Load returns (nil, nil) when the
// record does not exist.
type Storage interface {
	Load(ctx context.Context, userID uint, record string) ([]byte, error)
	Save(ctx context.Context, userID uint, record string, data []byte) error
	Delete(ctx context.Context, userID uint, records ...string) error
}
