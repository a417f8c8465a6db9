package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var (
	ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
		"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
	)
)

// CreatePurchaseOrderCommand represents the buyer's request to open a purchase
// order with a seller, carrying the identity fields of both parties, the order
// amount, and the spending credential presented for the gate check.
//
// The LEI, vLEI AID and description fields are opaque to this core and pass
// through unvalidated; the credential reference and declared limit are checked
// by the credential gate, not here.
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	buyer         kernel.Party
	seller        kernel.Party
	buyerLEI      string
	sellerLEI     string
	buyerVLEIAID  string
	sellerVLEIAID string
	description   string
	amount        kernel.Amount
	credentialRef string
	declaredLimit kernel.Amount

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand creates a command to open a purchase order.
// Validates both party identities; all other fields are recorded verbatim.
func NewCreatePurchaseOrderCommand(
	buyer kernel.Party,
	seller kernel.Party,
	buyerLEI string,
	sellerLEI string,
	buyerVLEIAID string,
	sellerVLEIAID string,
	description string,
	amount kernel.Amount,
	credentialRef string,
	declaredLimit kernel.Amount,
) (CreatePurchaseOrderCommand, error) {
	if err := errors.Join(
		buyer.Validate(),
		seller.Validate(),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return CreatePurchaseOrderCommand{
		buyer:         buyer,
		seller:        seller,
		buyerLEI:      buyerLEI,
		sellerLEI:     sellerLEI,
		buyerVLEIAID:  buyerVLEIAID,
		sellerVLEIAID: sellerVLEIAID,
		description:   description,
		amount:        amount,
		credentialRef: credentialRef,
		declaredLimit: declaredLimit,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

// Buyer returns the buyer's identity; the buyer authorizes creation.
func (c CreatePurchaseOrderCommand) Buyer() kernel.Party {
	return c.buyer
}

// Seller returns the seller's identity.
func (c CreatePurchaseOrderCommand) Seller() kernel.Party {
	return c.seller
}

// BuyerLEI returns the buyer's legal-entity identifier.
func (c CreatePurchaseOrderCommand) BuyerLEI() string {
	return c.buyerLEI
}

// SellerLEI returns the seller's legal-entity identifier.
func (c CreatePurchaseOrderCommand) SellerLEI() string {
	return c.sellerLEI
}

// BuyerVLEIAID returns the buyer's verifiable-credential identifier, checked
// by the credential gate.
func (c CreatePurchaseOrderCommand) BuyerVLEIAID() string {
	return c.buyerVLEIAID
}

// SellerVLEIAID returns the seller's verifiable-credential identifier.
func (c CreatePurchaseOrderCommand) SellerVLEIAID() string {
	return c.sellerVLEIAID
}

// Description returns the free-form order description.
func (c CreatePurchaseOrderCommand) Description() string {
	return c.description
}

// Amount returns the order amount.
func (c CreatePurchaseOrderCommand) Amount() kernel.Amount {
	return c.amount
}

// CredentialRef returns the presented spending-credential reference.
func (c CreatePurchaseOrderCommand) CredentialRef() string {
	return c.credentialRef
}

// DeclaredLimit returns the caller-declared spending limit from the credential.
func (c CreatePurchaseOrderCommand) DeclaredLimit() kernel.Amount {
	return c.declaredLimit
}
