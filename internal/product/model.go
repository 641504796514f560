package product

import "time"

type Product struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	Photo       string    `json:"photo"`
	PhotoRef    string    `json:"photoRef,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Reduction is one stock decrement ordered against a product.
type Reduction struct {
	ProductID uint
	Quantity  int
}

type ListParams struct {
	Search   string
	Category string
	MaxPrice int64
	Page     int
	Limit    int
}

type UpdateParams struct {
	Name        *string
	Category    *string
	Description *string
	Price       *int64
	Stock       *int
	Photo       *string
	PhotoRef    *string
}
