package events

import (
	"shopspot-be/internal/order"

	"github.com/google/uuid"
)

type publisher interface {
	Publish(key, value []byte)
}

// OrderEvents adapts the producer to the order service's publisher port.
type OrderEvents struct {
	pub      publisher
	producer string
}

func NewOrderEvents(pub *Producer, producerName string) *OrderEvents {
	return &OrderEvents{pub: pub, producer: producerName}
}

func (e *OrderEvents) OrderPlaced(o *order.Order) {
	items := make([]OrderItemPayload, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemPayload{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	env := NewEnvelope(EventOrderPlaced, e.producer, OrderPlacedPayload{
		OrderID:  o.ID.String(),
		UserID:   o.UserID,
		Items:    items,
		Total:    o.Total,
		Discount: o.Discount,
	})

	e.pub.Publish([]byte(o.ID.String()), MustMarshal(env))
}

func (e *OrderEvents) OrderStatusUpdated(orderID uuid.UUID, status order.Status) {
	env := NewEnvelope(EventOrderStatusUpdated, e.producer, OrderStatusUpdatedPayload{
		OrderID: orderID.String(),
		Status:  string(status),
	})

	e.pub.Publish([]byte(orderID.String()), MustMarshal(env))
}
