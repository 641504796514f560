package events

import (
	"context"
	"encoding/json"
	"testing"

	"shopspot-be/internal/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	keys   [][]byte
	values [][]byte
}

func (c *capturingPublisher) Publish(key, value []byte) {
	c.keys = append(c.keys, key)
	c.values = append(c.values, value)
}

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope(EventOrderPlaced, "shopspot-api", OrderStatusUpdatedPayload{OrderID: "o1"})

	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, EventOrderPlaced, env.EventType)
	assert.Equal(t, "shopspot-api", env.Producer)
	assert.False(t, env.OccurredAt.IsZero())
}

func TestOrderEvents_OrderPlaced(t *testing.T) {
	cap := &capturingPublisher{}
	ev := &OrderEvents{pub: cap, producer: "shopspot-api"}

	id := uuid.New()
	ev.OrderPlaced(&order.Order{
		ID:       id,
		UserID:   1,
		Items:    []order.Item{{ProductID: 5, Quantity: 2, Price: 1000}},
		Total:    2110,
		Discount: 300,
	})

	require.Len(t, cap.values, 1)
	assert.Equal(t, []byte(id.String()), cap.keys[0], "partitioned by order id")

	var env Envelope
	require.NoError(t, json.Unmarshal(cap.values[0], &env))
	assert.Equal(t, EventOrderPlaced, env.EventType)

	var payload OrderPlacedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, id.String(), payload.OrderID)
	assert.Equal(t, int64(2110), payload.Total)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, uint(5), payload.Items[0].ProductID)
}

func TestProducer_PublishAfterShutdownDropsQuietly(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "test.topic", 4)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	cancel()
	p.WaitClosed()

	// In-flight request handlers may still publish while the server drains;
	// the event is dropped, but the handler must not panic.
	assert.NotPanics(t, func() {
		p.Publish([]byte("k"), []byte("v"))
	})
}

func TestOrderEvents_OrderStatusUpdated(t *testing.T) {
	cap := &capturingPublisher{}
	ev := &OrderEvents{pub: cap, producer: "shopspot-api"}

	id := uuid.New()
	ev.OrderStatusUpdated(id, order.StatusShipped)

	require.Len(t, cap.values, 1)

	var env Envelope
	require.NoError(t, json.Unmarshal(cap.values[0], &env))
	assert.Equal(t, EventOrderStatusUpdated, env.EventType)

	var payload OrderStatusUpdatedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, "Shipped", payload.Status)
}
