package order

import (
	"time"

	"github.com/google/uuid"
)

type Status string

// Declared lifecycle. Transitions are unconstrained: an administrator may set
// any of these values in any sequence.
const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// Item is a snapshot copy of a cart line taken at order-creation time, so
// historical orders are immune to later product edits.
type Item struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Photo     string `json:"photo"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pinCode"`
	Phone   string `json:"phone"`
}

// UserInfo is the minimal projection joined into admin listings.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order's monetary fields are immutable once created; only Status changes
// afterwards.
type Order struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uint         `json:"userId"`
	Items           []Item       `json:"orderItems"`
	ShippingInfo    ShippingInfo `json:"shippingInfo"`
	SubTotal        int64        `json:"subTotal"`
	Tax             int64        `json:"tax"`
	ShippingCharges int64        `json:"shippingCharges"`
	Discount        int64        `json:"discount"`
	Total           int64        `json:"total"`
	Status          Status       `json:"status"`
	User            *UserInfo    `json:"user,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

type CreateParams struct {
	UserID          uint
	Items           []Item
	ShippingInfo    ShippingInfo
	SubTotal        int64
	Tax             int64
	ShippingCharges int64
	Discount        int64
	Total           int64
}
