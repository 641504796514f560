package coupon

import "time"

// Coupon is a named discount amount. Immutable once created except for
// deletion; applying one never consumes it.
type Coupon struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}
