package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/events"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/clock"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateCommand(t *testing.T, amount, limit kernel.Amount) commands.CreatePurchaseOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreatePurchaseOrderCommand(
		mustParty(t, "GDBUYER"),
		mustParty(t, "GDSELLER"),
		"5493001KJTIIGC8Y1R12",
		"5493001KJTIIGC8Y1R17",
		"EFaKVxqfZ3TpIign2Pafq",
		"EHc7V2aVxqfZ3TpIign2P",
		"100 reams of A4 paper",
		amount,
		"EIDcred123",
		limit,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreatePurchaseOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	orderRepo := new(MockOrderRepository)
	counterRepo := new(MockCounterRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	factory := new(MockCreateOrderUoWFactory)
	gate := new(MockCredentialGate)

	cmd := newCreateCommand(t, kernel.NewAmount(1_000_000_000), kernel.NewAmount(1_500_000_000))

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	gate.On("Check", ctx, "EIDcred123",
		kernel.NewAmount(1_500_000_000), kernel.NewAmount(1_000_000_000), "EFaKVxqfZ3TpIign2Pafq").
		Return(nil).Once()
	uow.On("CounterRepository").Return(counterRepo).Once()
	counterRepo.On("NextID", ctx).Return(kernel.OrderID(1), nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()

	var created *purchaseorder.PurchaseOrder
	orderRepo.On("Add", ctx, mock.AnythingOfType("*purchaseorder.PurchaseOrder")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*purchaseorder.PurchaseOrder)
		}).
		Return(nil).Once()

	var enqueued []ports.OutboxMessage
	uow.On("OutboxRepository").Return(outboxRepo).Twice()
	outboxRepo.On("Add", ctx, mock.AnythingOfType("ports.OutboxMessage")).
		Run(func(args mock.Arguments) {
			enqueued = append(enqueued, args.Get(1).(ports.OutboxMessage))
		}).
		Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Once()

	handler := commands.NewCreatePurchaseOrderCommandHandler(factory, gate, clock.NewFixed(now))

	id, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, kernel.OrderID(1), id)

	require.NotNil(t, created)
	assert.Equal(t, purchaseorder.Created, created.Status())
	assert.Equal(t, now, created.CreatedAt())
	assert.Nil(t, created.FulfilledAt())

	// credential_verified precedes po_created, matching the source event order.
	require.Len(t, enqueued, 2)
	assert.Equal(t, events.TopicCredentialVerified, enqueued[0].Topic)
	assert.Equal(t, events.TopicPOCreated, enqueued[1].Topic)

	var payload events.POCreated
	require.NoError(t, json.Unmarshal(enqueued[1].Payload, &payload))
	assert.Equal(t, uint64(1), payload.ID)
	assert.Equal(t, "GDBUYER", payload.Buyer)
	assert.Equal(t, "GDSELLER", payload.Seller)
	assert.Equal(t, int64(1_000_000_000), payload.Amount)
	assert.Equal(t, "EIDcred123", payload.CredentialRef)

	gate.AssertExpectations(t)
	counterRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePurchaseOrderCommandHandler_Handle_LimitExceeded(t *testing.T) {
	ctx := context.Background()

	counterRepo := new(MockCounterRepository)
	uow := new(MockOrderUoW)
	factory := new(MockCreateOrderUoWFactory)
	gate := new(MockCredentialGate)

	cmd := newCreateCommand(t, kernel.NewAmount(2_000_000_000), kernel.NewAmount(1_500_000_000))

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	gate.On("Check", ctx, "EIDcred123",
		kernel.NewAmount(1_500_000_000), kernel.NewAmount(2_000_000_000), "EFaKVxqfZ3TpIign2Pafq").
		Return(errs.NewLimitExceededError("200.0000000", "150.0000000")).Once()

	handler := commands.NewCreatePurchaseOrderCommandHandler(factory, gate, clock.NewSystem())

	_, err := handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrLimitExceeded)

	// The gate failed before allocation: the counter was never touched and
	// nothing was persisted or enqueued.
	counterRepo.AssertNotCalled(t, "NextID", mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	gate.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePurchaseOrderCommandHandler_Handle_InvalidCredential(t *testing.T) {
	ctx := context.Background()

	uow := new(MockOrderUoW)
	factory := new(MockCreateOrderUoWFactory)
	gate := new(MockCredentialGate)

	cmd, err := commands.NewCreatePurchaseOrderCommand(
		mustParty(t, "GDBUYER"),
		mustParty(t, "GDSELLER"),
		"", "", "", "", "",
		kernel.NewAmount(100),
		"",
		kernel.NewAmount(100),
	)
	require.NoError(t, err)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	gate.On("Check", ctx, "", kernel.NewAmount(100), kernel.NewAmount(100), "").
		Return(errs.NewInvalidCredentialError("credential SAID")).Once()

	handler := commands.NewCreatePurchaseOrderCommandHandler(factory, gate, clock.NewSystem())

	_, err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidCredential)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreatePurchaseOrderCommand_Validation(t *testing.T) {
	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreatePurchaseOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreatePurchaseOrderCommandIsNotConstructed)
	})

	t.Run("zero-value buyer is rejected", func(t *testing.T) {
		_, err := commands.NewCreatePurchaseOrderCommand(
			kernel.Party{},
			mustParty(t, "GDSELLER"),
			"", "", "", "", "",
			kernel.NewAmount(1),
			"cred",
			kernel.NewAmount(1),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
