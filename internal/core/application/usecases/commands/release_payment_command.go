package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	ErrReleasePaymentCommandIsNotConstructed = errors.New(
		"ReleasePaymentCommand must be created via NewReleasePaymentCommand constructor",
	)
)

// ReleasePaymentCommand represents the buyer releasing payment for a fulfilled
// order. assetRef identifies the settlement asset handed to the external
// asset mover.
type ReleasePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	buyer    kernel.Party
	assetRef string

	guard guard.ConstructorGuard
}

// NewReleasePaymentCommand creates a command for the buyer to release payment.
// The asset reference is required; its format is opaque to this core.
func NewReleasePaymentCommand(orderID kernel.OrderID, buyer kernel.Party, assetRef string) (ReleasePaymentCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		buyer.Validate(),
	); err != nil {
		return ReleasePaymentCommand{}, err
	}
	if assetRef == "" {
		return ReleasePaymentCommand{}, errs.NewValueIsRequiredError("asset reference")
	}

	return ReleasePaymentCommand{
		orderID:  orderID,
		buyer:    buyer,
		assetRef: assetRef,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleasePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReleasePaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pay.
func (c ReleasePaymentCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Buyer returns the caller claiming the buyer role.
func (c ReleasePaymentCommand) Buyer() kernel.Party {
	return c.buyer
}

// AssetRef returns the settlement-asset reference for the transfer.
func (c ReleasePaymentCommand) AssetRef() string {
	return c.assetRef
}
