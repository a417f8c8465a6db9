// Package ledger implements the asset mover boundary. The in-tree
// implementation records transfer instructions in the log; a deployment
// against a real settlement system substitutes its client behind the same
// port.
package ledger

import (
	"context"
	"log/slog"

	"procurement/internal/core/domain/model/kernel"
)

// LoggingAssetMover acknowledges every transfer after logging it. It never
// fails, which makes the payment path deterministic in local and test
// environments.
type LoggingAssetMover struct {
	logger *slog.Logger
}

// NewLoggingAssetMover creates an asset mover that logs transfers.
func NewLoggingAssetMover(logger *slog.Logger) *LoggingAssetMover {
	return &LoggingAssetMover{logger: logger}
}

// Transfer records the instruction to move amount of the referenced asset
// from one party to the other.
func (m *LoggingAssetMover) Transfer(
	_ context.Context,
	assetRef string,
	from, to kernel.Party,
	amount kernel.Amount,
) error {
	m.logger.Info("asset transfer",
		"asset", assetRef,
		"from", from.String(),
		"to", to.String(),
		"amount", amount.String(),
	)
	return nil
}
