package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
)

// CounterRepository allocates purchase-order identifiers from a single
// persisted counter kept under a reserved key distinct from any order id.
type CounterRepository interface {
	// NextID reads the current counter value (0 if absent), increments it,
	// persists the new value, and returns it. The read-modify-write is
	// indivisible with respect to concurrent NextID calls: the implementation
	// serializes access so two callers never observe the same value.
	NextID(ctx context.Context) (kernel.OrderID, error)
}
