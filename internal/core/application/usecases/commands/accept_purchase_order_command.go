package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var (
	ErrAcceptPurchaseOrderCommandIsNotConstructed = errors.New(
		"AcceptPurchaseOrderCommand must be created via NewAcceptPurchaseOrderCommand constructor",
	)
)

// AcceptPurchaseOrderCommand represents the seller's commitment to an order.
type AcceptPurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	seller  kernel.Party

	guard guard.ConstructorGuard
}

// NewAcceptPurchaseOrderCommand creates a command for the seller to accept an order.
func NewAcceptPurchaseOrderCommand(orderID kernel.OrderID, seller kernel.Party) (AcceptPurchaseOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		seller.Validate(),
	); err != nil {
		return AcceptPurchaseOrderCommand{}, err
	}

	return AcceptPurchaseOrderCommand{
		orderID: orderID,
		seller:  seller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptPurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptPurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c AcceptPurchaseOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Seller returns the caller claiming the seller role.
func (c AcceptPurchaseOrderCommand) Seller() kernel.Party {
	return c.seller
}
