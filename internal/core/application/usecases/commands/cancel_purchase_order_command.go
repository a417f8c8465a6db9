package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var (
	ErrCancelPurchaseOrderCommandIsNotConstructed = errors.New(
		"CancelPurchaseOrderCommand must be created via NewCancelPurchaseOrderCommand constructor",
	)
)

// CancelPurchaseOrderCommand represents the buyer withdrawing an order the
// seller has not yet accepted.
type CancelPurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	buyer   kernel.Party

	guard guard.ConstructorGuard
}

// NewCancelPurchaseOrderCommand creates a command for the buyer to cancel an order.
func NewCancelPurchaseOrderCommand(orderID kernel.OrderID, buyer kernel.Party) (CancelPurchaseOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		buyer.Validate(),
	); err != nil {
		return CancelPurchaseOrderCommand{}, err
	}

	return CancelPurchaseOrderCommand{
		orderID: orderID,
		buyer:   buyer,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelPurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelPurchaseOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Buyer returns the caller claiming the buyer role.
func (c CancelPurchaseOrderCommand) Buyer() kernel.Party {
	return c.buyer
}
