package commands_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchaseorder.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.OrderID) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchaseorder.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) GetIDsByParty(ctx context.Context, party kernel.Party) ([]kernel.OrderID, error) {
	args := m.Called(ctx, party)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.OrderID), args.Error(1)
}

type MockCounterRepository struct{ mock.Mock }

func (m *MockCounterRepository) NextID(ctx context.Context) (kernel.OrderID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.OrderID), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, message ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockOutboxRepository) ListPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error {
	args := m.Called(ctx, id, publishedAt)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) CounterRepository() ports.CounterRepository {
	args := m.Called()
	return args.Get(0).(ports.CounterRepository)
}

func (m *MockOrderUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockCredentialGate struct{ mock.Mock }

func (m *MockCredentialGate) Check(
	ctx context.Context,
	credentialRef string,
	declaredLimit, amount kernel.Amount,
	aid string,
) error {
	args := m.Called(ctx, credentialRef, declaredLimit, amount, aid)
	return args.Error(0)
}

func (m *MockCredentialGate) Status(ctx context.Context, credentialRef string) (bool, error) {
	args := m.Called(ctx, credentialRef)
	return args.Bool(0), args.Error(1)
}

type MockAssetMover struct{ mock.Mock }

func (m *MockAssetMover) Transfer(
	ctx context.Context,
	assetRef string,
	from, to kernel.Party,
	amount kernel.Amount,
) error {
	args := m.Called(ctx, assetRef, from, to, amount)
	return args.Error(0)
}

func mustParty(t *testing.T, address string) kernel.Party {
	t.Helper()
	p, err := kernel.NewParty(address)
	require.NoError(t, err)
	return p
}

func restoreOrder(t *testing.T, id kernel.OrderID, status purchaseorder.Status) *purchaseorder.PurchaseOrder {
	t.Helper()

	var fulfilledAt *time.Time
	if status == purchaseorder.Fulfilled || status == purchaseorder.Paid {
		ts := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)
		fulfilledAt = &ts
	}

	po, err := purchaseorder.RestorePurchaseOrder(
		id,
		mustParty(t, "GDBUYER"),
		mustParty(t, "GDSELLER"),
		"5493001KJTIIGC8Y1R12",
		"5493001KJTIIGC8Y1R17",
		"EFaKVxqfZ3TpIign2Pafq",
		"EHc7V2aVxqfZ3TpIign2P",
		"100 reams of A4 paper",
		kernel.NewAmount(1_000_000_000),
		status,
		time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		fulfilledAt,
	)
	require.NoError(t, err)
	return po
}
