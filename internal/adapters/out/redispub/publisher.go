// Package redispub delivers notifications over Redis pub/sub. Each outbox
// topic maps to a channel of the same name.
package redispub

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Publisher implements EventPublisher on top of a Redis client.
type Publisher struct {
	client *redis.Client
}

// NewPublisher creates a Redis-backed event publisher.
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish sends the payload on the channel named by topic.
func (p *Publisher) Publish(ctx context.Context, topic string, payload []byte) error {
	return p.client.Publish(ctx, topic, payload).Err()
}
