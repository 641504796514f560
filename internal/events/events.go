package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	// TopicOrders carries all order lifecycle events, partitioned by order id
	// so events for one order keep their order.
	TopicOrders = "orders.events"

	EventOrderPlaced        = "OrderPlaced"
	EventOrderStatusUpdated = "OrderStatusUpdated"
)

type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	Payload    json.RawMessage `json:"payload"`
}

type OrderItemPayload struct {
	ProductID uint  `json:"product_id"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"`
}

type OrderPlacedPayload struct {
	OrderID  string             `json:"order_id"`
	UserID   uint               `json:"user_id"`
	Items    []OrderItemPayload `json:"items"`
	Total    int64              `json:"total"`
	Discount int64              `json:"discount"`
}

type OrderStatusUpdatedPayload struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// NewEnvelope wraps a payload with event metadata.
func NewEnvelope(eventType, producer string, payload any) Envelope {
	return Envelope{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Producer:   producer,
		Payload:    MustMarshal(payload),
	}
}

func MustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
