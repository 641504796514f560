package cart

// Line is one product entry in a shopper's cart. Stock is the snapshot of the
// product's stock recorded when the line was created; quantity never exceeds it.
type Line struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Stock     int    `json:"stock"`
	Photo     string `json:"photo"`
}

type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pinCode"`
	Phone   string `json:"phone"`
}

func (s ShippingInfo) IsZero() bool {
	return s == ShippingInfo{}
}

// Totals is derived pricing state. It is recomputed from the lines and discount
// on every read and never stored independently of its inputs.
type Totals struct {
	SubTotal        int64 `json:"subTotal"`
	Tax             int64 `json:"tax"`
	ShippingCharges int64 `json:"shippingCharges"`
	Discount        int64 `json:"discount"`
	Total           int64 `json:"total"`
}

type Cart struct {
	Items        []Line       `json:"items"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	Totals       Totals       `json:"totals"`
}
