package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var (
	ErrFulfillPurchaseOrderCommandIsNotConstructed = errors.New(
		"FulfillPurchaseOrderCommand must be created via NewFulfillPurchaseOrderCommand constructor",
	)
)

// FulfillPurchaseOrderCommand represents the seller reporting delivery of an
// accepted order.
type FulfillPurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	seller  kernel.Party

	guard guard.ConstructorGuard
}

// NewFulfillPurchaseOrderCommand creates a command for the seller to mark an
// order fulfilled.
func NewFulfillPurchaseOrderCommand(orderID kernel.OrderID, seller kernel.Party) (FulfillPurchaseOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		seller.Validate(),
	); err != nil {
		return FulfillPurchaseOrderCommand{}, err
	}

	return FulfillPurchaseOrderCommand{
		orderID: orderID,
		seller:  seller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FulfillPurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillPurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to fulfill.
func (c FulfillPurchaseOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Seller returns the caller claiming the seller role.
func (c FulfillPurchaseOrderCommand) Seller() kernel.Party {
	return c.seller
}
