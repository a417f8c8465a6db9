package commands

import (
	"context"

	"procurement/internal/core/domain/events"
	"procurement/internal/pkg/clock"
)

// AcceptPurchaseOrderCommandHandler moves an order from Created to Accepted on
// behalf of its seller.
type AcceptPurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewAcceptPurchaseOrderCommandHandler creates a handler for order acceptance.
func NewAcceptPurchaseOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) AcceptPurchaseOrderCommandHandler {
	return AcceptPurchaseOrderCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle loads the order under a row lock, applies the Accept transition (role
// check first, then status precondition), persists it and enqueues the
// po_accepted notification. Any failure rolls the whole operation back.
func (h AcceptPurchaseOrderCommandHandler) Handle(ctx context.Context, cmd AcceptPurchaseOrderCommand) error {
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

	if err = po.Accept(cmd.Seller()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, po); err != nil {
		return err
	}

	accepted, err := newOutboxMessage(events.TopicPOAccepted, events.POAccepted{
		ID:     uint64(po.ID()),
		Seller: cmd.Seller().String(),
	}, h.clock.Now())
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, accepted); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
