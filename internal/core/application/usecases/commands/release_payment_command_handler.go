package commands

import (
	"context"

	"procurement/internal/core/domain/events"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/clock"
)

// ReleasePaymentCommandHandler hands a fulfilled order to the external asset
// mover and, only once the transfer reports success, persists the Paid status.
// This is the single place in the workflow that triggers a value transfer, and
// it fires at most once per order: the Fulfilled -> Paid transition is
// validated before the transfer and Paid is terminal.
type ReleasePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	assetMover ports.AssetMover
	clock      clock.Clock
}

// NewReleasePaymentCommandHandler creates a handler for payment release.
func NewReleasePaymentCommandHandler(
	uowFactory OrderUoWFactory,
	assetMover ports.AssetMover,
	clk clock.Clock,
) ReleasePaymentCommandHandler {
	return ReleasePaymentCommandHandler{
		uowFactory: uowFactory,
		assetMover: assetMover,
		clock:      clk,
	}
}

// Handle loads the order under a row lock, validates the Pay transition (buyer
// role, Fulfilled status), then invokes the asset mover with exactly the
// order's buyer, seller and amount. A failed transfer aborts before any write:
// the order remains Fulfilled. Only a successful transfer is followed by the
// status write, the po_paid notification and the commit.
func (h ReleasePaymentCommandHandler) Handle(ctx context.Context, cmd ReleasePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	po, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Validates role and status; mutates only the in-memory aggregate, which
	// is discarded unless the transfer below succeeds.
	if err = po.Pay(cmd.Buyer()); err != nil {
		return err
	}

	if err = h.assetMover.Transfer(ctx, cmd.AssetRef(), cmd.Buyer(), po.Seller(), po.Amount()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, po); err != nil {
		return err
	}

	paid, err := newOutboxMessage(events.TopicPOPaid, events.NewPOPaid(po, cmd.Buyer()), h.clock.Now())
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, paid); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
