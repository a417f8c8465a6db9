package commands

import (
	"context"

	"procurement/internal/core/domain/events"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/clock"
)

// CreatePurchaseOrderCommandHandler handles order creation: it runs the
// credential gate, allocates the next identifier, persists the order in
// Created status and enqueues the creation notifications, all within one
// transaction.
//
// The gate runs before id allocation, so a failed check never advances the
// counter and no state of any kind is persisted.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	gate       ports.CredentialGate
	clock      clock.Clock
}

// NewCreatePurchaseOrderCommandHandler creates a handler for order creation.
func NewCreatePurchaseOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	gate ports.CredentialGate,
	clk clock.Clock,
) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		clock:      clk,
	}
}

// Handle processes the creation command and returns the allocated identifier.
// Sequence: credential gate check, id allocation, order construction,
// persistence, notifications, commit. Any failure aborts the whole operation.
func (h CreatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePurchaseOrderCommand,
) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Gate before allocation: a rejected credential must not consume an id.
	if err := h.gate.Check(ctx, cmd.CredentialRef(), cmd.DeclaredLimit(), cmd.Amount(), cmd.BuyerVLEIAID()); err != nil {
		return 0, err
	}

	id, err := uow.CounterRepository().NextID(ctx)
	if err != nil {
		return 0, err
	}

	now := h.clock.Now()
	po, err := purchaseorder.NewPurchaseOrder(
		id,
		cmd.Buyer(),
		cmd.Seller(),
		cmd.BuyerLEI(),
		cmd.SellerLEI(),
		cmd.BuyerVLEIAID(),
		cmd.SellerVLEIAID(),
		cmd.Description(),
		cmd.Amount(),
		now,
	)
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, po); err != nil {
		return 0, err
	}

	verified, err := newOutboxMessage(events.TopicCredentialVerified, events.CredentialVerified{
		CredentialRef: cmd.CredentialRef(),
		AID:           cmd.BuyerVLEIAID(),
	}, now)
	if err != nil {
		return 0, err
	}
	if err = uow.OutboxRepository().Add(ctx, verified); err != nil {
		return 0, err
	}

	created, err := newOutboxMessage(events.TopicPOCreated, events.NewPOCreated(po, cmd.CredentialRef()), now)
	if err != nil {
		return 0, err
	}
	if err = uow.OutboxRepository().Add(ctx, created); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
