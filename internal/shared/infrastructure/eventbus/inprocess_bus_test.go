package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConsumer struct {
	types    []string
	received []*ConsumedEvent
	err      error
}

func (c *recordingConsumer) EventTypes() []string { return c.types }

func (c *recordingConsumer) Handle(ctx context.Context, event *ConsumedEvent) error {
	c.received = append(c.received, event)
	return c.err
}

func TestConsumerRegistry_Dispatch(t *testing.T) {
	t.Run("delivers to every consumer of the routing key", func(t *testing.T) {
		registry := NewConsumerRegistry(nil)
		first := &recordingConsumer{types: []string{"guide.restaurant.created"}}
		second := &recordingConsumer{types: []string{"guide.restaurant.created", "guide.city.created"}}
		other := &recordingConsumer{types: []string{"guide.city.created"}}
		registry.Register(first)
		registry.Register(second)
		registry.Register(other)

		assert.Equal(t, 4, registry.ConsumerCount())

		event := &ConsumedEvent{EventID: uuid.New(), RoutingKey: "guide.restaurant.created"}
		require.NoError(t, registry.Dispatch(context.Background(), event))

		assert.Len(t, first.received, 1)
		assert.Len(t, second.received, 1)
		assert.Empty(t, other.received)
	})

	t.Run("a failing consumer does not stop the others", func(t *testing.T) {
		registry := NewConsumerRegistry(nil)
		failing := &recordingConsumer{types: []string{"guide.restaurant.created"}, err: errors.New("boom")}
		healthy := &recordingConsumer{types: []string{"guide.restaurant.created"}}
		registry.Register(failing)
		registry.Register(healthy)

		event := &ConsumedEvent{EventID: uuid.New(), RoutingKey: "guide.restaurant.created"}
		err := registry.Dispatch(context.Background(), event)

		require.Error(t, err)
		assert.Len(t, healthy.received, 1)
	})

	t.Run("no consumers is not an error", func(t *testing.T) {
		registry := NewConsumerRegistry(nil)
		event := &ConsumedEvent{EventID: uuid.New(), RoutingKey: "guide.restaurant.deleted"}
		require.NoError(t, registry.Dispatch(context.Background(), event))
	})
}

func TestInProcessEventBus_Publish(t *testing.T) {
	t.Run("delivers synchronously", func(t *testing.T) {
		bus := NewInProcessEventBus(nil)
		consumer := &recordingConsumer{types: []string{"guide.restaurant.created"}}
		bus.RegisterConsumer(consumer)

		payload := []byte(`{"event_id":"` + uuid.NewString() + `","aggregate_id":10,"aggregate_type":"restaurant"}`)
		require.NoError(t, bus.Publish(context.Background(), "guide.restaurant.created", payload))

		require.Len(t, consumer.received, 1)
		assert.Equal(t, int64(10), consumer.received[0].AggregateID)
		assert.Equal(t, "guide.restaurant.created", consumer.received[0].RoutingKey, "routing key falls back to the publish key")
	})

	t.Run("consumer failure is swallowed, local mode has no redelivery", func(t *testing.T) {
		bus := NewInProcessEventBus(nil)
		bus.RegisterConsumer(&recordingConsumer{types: []string{"guide.restaurant.created"}, err: errors.New("boom")})

		require.NoError(t, bus.Publish(context.Background(), "guide.restaurant.created", []byte(`{}`)))
	})

	t.Run("malformed payload is logged and dropped", func(t *testing.T) {
		bus := NewInProcessEventBus(nil)
		consumer := &recordingConsumer{types: []string{"guide.restaurant.created"}}
		bus.RegisterConsumer(consumer)

		require.NoError(t, bus.Publish(context.Background(), "guide.restaurant.created", []byte("not json")))
		assert.Empty(t, consumer.received)
	})
}
