package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
)

// OrderRepository defines the persistence contract for purchase-order
// aggregates. Orders are never deleted; cancellation is a terminal status.
type OrderRepository interface {
	// Add persists a new order and registers it in the per-party index so
	// GetIDsByParty can find it. The order must not already exist.
	Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError if no order exists for the id.
	Get(ctx context.Context, id kernel.OrderID) (*purchaseorder.PurchaseOrder, error)

	// GetForUpdate retrieves an order and locks its row for the remainder of
	// the current transaction, giving mutating operations a per-order critical
	// section. Returns an ObjectNotFoundError if no order exists for the id.
	GetForUpdate(ctx context.Context, id kernel.OrderID) (*purchaseorder.PurchaseOrder, error)

	// GetIDsByParty lists the identifiers of every order in which the party
	// participates as buyer or seller, in ascending id order.
	GetIDsByParty(ctx context.Context, party kernel.Party) ([]kernel.OrderID, error)
}
