package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPublisher struct {
	published []string
	err       error
}

func (p *stubPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, routingKey)
	return nil
}

func (p *stubPublisher) Close() error { return nil }

func TestProcessor_ProcessOnce(t *testing.T) {
	t.Run("publishes pending messages in order and marks them", func(t *testing.T) {
		conn := setupDB(t)
		repo := NewSQLRepository(conn)
		ctx := context.Background()

		first := newTestMessage("guide.restaurant.created")
		second := newTestMessage("guide.restaurant.updated")
		second.CreatedAt = first.CreatedAt.Add(time.Second)
		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))

		pub := &stubPublisher{}
		processor := NewProcessor(repo, pub, DefaultProcessorConfig(), nil)

		require.NoError(t, processor.ProcessOnce(ctx))

		assert.Equal(t, []string{"guide.restaurant.created", "guide.restaurant.updated"}, pub.published)

		pending, err := repo.GetUnpublished(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("publish failure schedules a retry", func(t *testing.T) {
		conn := setupDB(t)
		repo := NewSQLRepository(conn)
		ctx := context.Background()

		msg := newTestMessage("guide.restaurant.created")
		require.NoError(t, repo.Save(ctx, msg))

		pub := &stubPublisher{err: errors.New("broker unavailable")}
		processor := NewProcessor(repo, pub, DefaultProcessorConfig(), nil)

		require.NoError(t, processor.ProcessOnce(ctx))

		// The message is deferred, not dead-lettered.
		pending, err := repo.GetUnpublished(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)

		var retryCount int
		var deadLettered any
		row := conn.QueryRow(ctx, "SELECT retry_count, dead_lettered_at FROM outbox_messages WHERE id = $1", msg.ID)
		require.NoError(t, row.Scan(&retryCount, &deadLettered))
		assert.Equal(t, 1, retryCount)
		assert.Nil(t, deadLettered)
	})

	t.Run("exhausted retries dead-letter the message", func(t *testing.T) {
		conn := setupDB(t)
		repo := NewSQLRepository(conn)
		ctx := context.Background()

		msg := newTestMessage("guide.restaurant.created")
		require.NoError(t, repo.Save(ctx, msg))

		cfg := DefaultProcessorConfig()
		cfg.MaxRetries = 1

		pub := &stubPublisher{err: errors.New("broker unavailable")}
		processor := NewProcessor(repo, pub, cfg, nil)

		require.NoError(t, processor.ProcessOnce(ctx))

		var reason string
		row := conn.QueryRow(ctx, "SELECT dead_letter_reason FROM outbox_messages WHERE id = $1", msg.ID)
		require.NoError(t, row.Scan(&reason))
		assert.Equal(t, "broker unavailable", reason)

		pending, err := repo.GetUnpublished(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestProcessor_StartStop(t *testing.T) {
	conn := setupDB(t)
	repo := NewSQLRepository(conn)

	cfg := DefaultProcessorConfig()
	cfg.PollInterval = 10 * time.Millisecond

	pub := &stubPublisher{}
	processor := NewProcessor(repo, pub, cfg, nil)

	require.NoError(t, processor.Start(context.Background()))
	assert.True(t, processor.IsRunning())

	processor.Stop()
	assert.False(t, processor.IsRunning())
}

func TestRetryBackoff(t *testing.T) {
	processor := NewProcessor(nil, nil, ProcessorConfig{
		RetryBackoffBase: time.Second,
		RetryBackoffMax:  time.Minute,
	}, nil)

	tests := []struct {
		retry int
		want  time.Duration
	}{
		{retry: 1, want: time.Second},
		{retry: 2, want: 2 * time.Second},
		{retry: 3, want: 4 * time.Second},
		{retry: 7, want: time.Minute},
		{retry: 20, want: time.Minute},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, processor.retryBackoff(tt.retry), "retry %d", tt.retry)
	}
}
