package commands

import (
	"context"

	"procurement/internal/core/domain/events"
	"procurement/internal/pkg/clock"
)

// FulfillPurchaseOrderCommandHandler moves an order from Accepted to Fulfilled
// and stamps the fulfilment time, once.
type FulfillPurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewFulfillPurchaseOrderCommandHandler creates a handler for order fulfilment.
func NewFulfillPurchaseOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) FulfillPurchaseOrderCommandHandler {
	return FulfillPurchaseOrderCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle loads the order under a row lock, applies the Fulfill transition with
// the current time, persists it and enqueues the po_fulfilled notification.
func (h FulfillPurchaseOrderCommandHandler) Handle(ctx context.Context, cmd FulfillPurchaseOrderCommand) error {
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

	now := h.clock.Now()
	if err = po.Fulfill(cmd.Seller(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, po); err != nil {
		return err
	}

	fulfilled, err := newOutboxMessage(events.TopicPOFulfilled, events.POFulfilled{
		ID:     uint64(po.ID()),
		Seller: cmd.Seller().String(),
	}, now)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, fulfilled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
