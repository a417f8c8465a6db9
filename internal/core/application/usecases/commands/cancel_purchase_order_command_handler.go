package commands

import (
	"context"

	"procurement/internal/core/domain/events"
	"procurement/internal/pkg/clock"
)

// CancelPurchaseOrderCommandHandler moves an order from Created to Cancelled on
// behalf of its buyer. The order stays persisted; Cancelled is terminal.
type CancelPurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewCancelPurchaseOrderCommandHandler creates a handler for order cancellation.
func NewCancelPurchaseOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) CancelPurchaseOrderCommandHandler {
	return CancelPurchaseOrderCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle loads the order under a row lock, applies the Cancel transition,
// persists it and enqueues the po_cancelled notification.
func (h CancelPurchaseOrderCommandHandler) Handle(ctx context.Context, cmd CancelPurchaseOrderCommand) error {
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

	if err = po.Cancel(cmd.Buyer()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, po); err != nil {
		return err
	}

	cancelled, err := newOutboxMessage(events.TopicPOCancelled, events.POCancelled{
		ID:    uint64(po.ID()),
		Buyer: cmd.Buyer().String(),
	}, h.clock.Now())
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, cancelled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
