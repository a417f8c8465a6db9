// Package commands contains the mutating operations of the purchase-order
// workflow. Each operation is one command handler: authorization and state
// checks run inside the aggregate, every write goes through a unit of work,
// and any failed check aborts before anything is persisted.
package commands

import (
	"context"
	"encoding/json"
	"time"

	"procurement/internal/core/ports"

	"github.com/google/uuid"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CounterRepoFactory provides access to the id allocator within a transaction.
	CounterRepoFactory interface {
		CounterRepository() ports.CounterRepository
	}

	// OutboxRepoFactory provides access to the notification outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for operations on an existing order:
	// accept, fulfill, release payment, cancel.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates OrderUoW instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW additionally exposes the id allocator; only creation
	// touches the counter.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CounterRepoFactory
		OutboxRepoFactory
	}

	// CreateOrderUoWFactory creates CreateOrderUoW instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}
)

// newOutboxMessage wraps an event payload into a pending outbox row.
func newOutboxMessage(topic string, payload any, now time.Time) (ports.OutboxMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:        uuid.New(),
		Topic:     topic,
		Payload:   body,
		CreatedAt: now,
	}, nil
}
