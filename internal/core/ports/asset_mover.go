package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
)

// AssetMover is the external collaborator that moves value from buyer to
// seller when payment is released. A transfer either fully succeeds or leaves
// no effect; on error the enclosing operation aborts and the order stays
// Fulfilled.
type AssetMover interface {
	// Transfer moves exactly amount of the asset identified by assetRef from
	// the buyer to the seller, synchronously.
	Transfer(ctx context.Context, assetRef string, from, to kernel.Party, amount kernel.Amount) error
}
