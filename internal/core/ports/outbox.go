package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is one pending notification. Rows are written in the same
// transaction as the state change they describe and published asynchronously
// by the relay job.
type OutboxMessage struct {
	ID          uuid.UUID
	Topic       string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// OutboxRepository persists notifications alongside entity writes.
type OutboxRepository interface {
	// Add enqueues a message within the current transaction.
	Add(ctx context.Context, message OutboxMessage) error

	// ListPending returns up to limit unpublished messages, oldest first.
	ListPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records that a message was delivered to the event bus.
	MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error
}

// EventPublisher delivers notifications to the event bus.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}
