package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/database"
)

// timeFormat is the canonical storage format for outbox timestamps.
// Fixed-width UTC RFC3339 keeps lexicographic and chronological order aligned,
// so both backends can compare timestamps as text.
const timeFormat = time.RFC3339

// SQLRepository implements Repository on top of the database abstraction.
// The same SQL runs on PostgreSQL and SQLite.
type SQLRepository struct {
	conn database.Connection
}

// NewSQLRepository creates a new outbox repository.
func NewSQLRepository(conn database.Connection) *SQLRepository {
	return &SQLRepository{conn: conn}
}

func (r *SQLRepository) executor(ctx context.Context) database.Executor {
	return database.ExecutorFromContext(ctx, r.conn)
}

const insertQuery = `
	INSERT INTO outbox_messages (event_id, aggregate_type, aggregate_id, event_type, routing_key, payload, metadata, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id`

// Save stores a new outbox message.
func (r *SQLRepository) Save(ctx context.Context, msg *Message) error {
	return r.insert(ctx, r.executor(ctx), msg)
}

func (r *SQLRepository) insert(ctx context.Context, exec database.Executor, msg *Message) error {
	row := exec.QueryRow(ctx, insertQuery,
		msg.EventID.String(),
		msg.AggregateType,
		msg.AggregateID,
		msg.EventType,
		msg.RoutingKey,
		string(msg.Payload),
		nullString(string(msg.Metadata)),
		msg.CreatedAt.UTC().Format(timeFormat),
	)
	return row.Scan(&msg.ID)
}

// SaveBatch stores multiple outbox messages atomically. When the context
// carries a transaction the batch joins it; otherwise one is opened here.
func (r *SQLRepository) SaveBatch(ctx context.Context, msgs []*Message) error {
	if len(msgs) == 0 {
		return nil
	}

	if tx := database.TxFromContext(ctx); tx != nil {
		for _, msg := range msgs {
			if err := r.insert(ctx, tx, msg); err != nil {
				return err
			}
		}
		return nil
	}

	tx, err := r.conn.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, msg := range msgs {
		if err := r.insert(ctx, tx, msg); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetUnpublished retrieves unpublished messages ordered by creation time.
// Messages waiting for a retry backoff window are skipped.
func (r *SQLRepository) GetUnpublished(ctx context.Context, limit int) ([]*Message, error) {
	rows, err := r.executor(ctx).Query(ctx, `
		SELECT id, event_id, aggregate_type, aggregate_id, event_type, routing_key, payload, metadata, created_at, retry_count, last_error
		FROM outbox_messages
		WHERE published_at IS NULL
		  AND dead_lettered_at IS NULL
		  AND (next_retry_at IS NULL OR next_retry_at <= $1)
		ORDER BY created_at
		LIMIT $2`,
		time.Now().UTC().Format(timeFormat), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		var (
			msg       Message
			eventID   string
			payload   string
			metadata  sql.NullString
			createdAt string
			lastError sql.NullString
		)
		if err := rows.Scan(&msg.ID, &eventID, &msg.AggregateType, &msg.AggregateID,
			&msg.EventType, &msg.RoutingKey, &payload, &metadata,
			&createdAt, &msg.RetryCount, &lastError); err != nil {
			return nil, err
		}

		msg.EventID, _ = uuid.Parse(eventID)
		msg.Payload = json.RawMessage(payload)
		msg.CreatedAt, _ = time.Parse(timeFormat, createdAt)
		if metadata.Valid {
			msg.Metadata = json.RawMessage(metadata.String)
		}
		if lastError.Valid {
			msg.LastError = &lastError.String
		}
		messages = append(messages, &msg)
	}

	return messages, rows.Err()
}

// MarkPublished marks a message as successfully published.
func (r *SQLRepository) MarkPublished(ctx context.Context, id int64) error {
	_, err := r.executor(ctx).Exec(ctx,
		`UPDATE outbox_messages SET published_at = $1 WHERE id = $2`,
		time.Now().UTC().Format(timeFormat), id)
	return err
}

// MarkFailed records a publish failure with error message.
func (r *SQLRepository) MarkFailed(ctx context.Context, id int64, errMsg string, nextRetryAt time.Time) error {
	_, err := r.executor(ctx).Exec(ctx, `
		UPDATE outbox_messages
		SET retry_count = retry_count + 1, last_error = $1, next_retry_at = $2
		WHERE id = $3`,
		errMsg, nextRetryAt.UTC().Format(timeFormat), id)
	return err
}

// MarkDead marks a message as dead-lettered.
func (r *SQLRepository) MarkDead(ctx context.Context, id int64, reason string) error {
	_, err := r.executor(ctx).Exec(ctx, `
		UPDATE outbox_messages
		SET dead_lettered_at = $1, dead_letter_reason = $2
		WHERE id = $3`,
		time.Now().UTC().Format(timeFormat), reason, id)
	return err
}

// DeleteOld removes successfully published messages older than the retention period.
func (r *SQLRepository) DeleteOld(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan).UTC().Format(timeFormat)
	result, err := r.executor(ctx).Exec(ctx,
		`DELETE FROM outbox_messages WHERE published_at IS NOT NULL AND published_at < $1`,
		cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
