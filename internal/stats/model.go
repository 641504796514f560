package stats

// Dashboard aggregates the figures shown on the admin overview page.
type Dashboard struct {
	TotalRevenue   int64            `json:"total_revenue"`
	OrderCount     int              `json:"order_count"`
	ProductCount   int              `json:"product_count"`
	UserCount      int              `json:"user_count"`
	CouponCount    int              `json:"coupon_count"`
	RevenueByMonth []MonthlyRevenue `json:"revenue_by_month"`
	OrdersByStatus map[string]int   `json:"orders_by_status"`
	UsersByGender  map[string]int   `json:"users_by_gender"`
}

type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}
