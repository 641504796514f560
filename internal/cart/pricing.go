package cart

import "math"

const (
	// FlatShippingCharge applies whenever the cart is non-empty.
	FlatShippingCharge int64 = 50

	taxRate = 0.18
)

// ComputeTotals derives cart totals from the lines and an applied discount.
// Amounts are in minor units. The computation is pure: unchanged inputs yield
// unchanged output.
//
// total = subTotal + shipping + tax - discount, floored at 0. If flooring
// occurs the discount is clamped to exactly cover the pre-discount total, so
// a coupon can never drive the total negative.
func ComputeTotals(lines []Line, discount int64) Totals {
	var subTotal int64
	for _, l := range lines {
		subTotal += l.Price * int64(l.Quantity)
	}

	var shipping int64
	if len(lines) > 0 {
		shipping = FlatShippingCharge
	}

	tax := int64(math.Round(taxRate * float64(subTotal)))

	total := subTotal + shipping + tax - discount
	if total < 0 {
		discount = subTotal + shipping + tax
		total = 0
	}

	return Totals{
		SubTotal:        subTotal,
		Tax:             tax,
		ShippingCharges: shipping,
		Discount:        discount,
		Total:           total,
	}
}
