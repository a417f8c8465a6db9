package purchaseorder

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder instance
	// was not created through NewPurchaseOrder or RestorePurchaseOrder.
	ErrPurchaseOrderIsNotConstructed = errors.New(
		"PurchaseOrder must be created via NewPurchaseOrder or RestorePurchaseOrder",
	)
)

// PurchaseOrder is the aggregate root of the bilateral procurement workflow
// between one buyer and one seller.
//
// PurchaseOrder maintains these invariants:
//   - id, buyer, seller, amount and all identity/credential fields never change
//     after construction
//   - status mutates only through the transition methods, only forward along
//     the transition graph, and only after the caller passed the role check
//   - fulfilledAt is set exactly once, when the order enters Fulfilled
//
// The legal-entity identifiers (LEI) and verifiable-credential identifiers
// (vLEI AID) of both parties are opaque to this core: they are recorded
// verbatim for downstream verification and carry no format constraints here.
// The same holds for the free-form description.
//
// Note: the workflow intentionally does not require buyer != seller; callers
// relying on self-dealing orders keep working.
type PurchaseOrder struct {
	id     kernel.OrderID
	buyer  kernel.Party
	seller kernel.Party

	buyerLEI      string
	sellerLEI     string
	buyerVLEIAID  string
	sellerVLEIAID string

	description string
	amount      kernel.Amount

	status      Status
	createdAt   time.Time
	fulfilledAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewPurchaseOrder creates an order in Created status. This is the only entry
// point into the state machine; the identifier must already be allocated and
// the credential gate must already have passed.
//
// Validation covers the identifier and both party identities. LEI, AID and
// description values are stored as-is, and the amount is recorded verbatim.
func NewPurchaseOrder(
	id kernel.OrderID,
	buyer kernel.Party,
	seller kernel.Party,
	buyerLEI string,
	sellerLEI string,
	buyerVLEIAID string,
	sellerVLEIAID string,
	description string,
	amount kernel.Amount,
	createdAt time.Time,
) (*PurchaseOrder, error) {
	if err := errors.Join(
		id.Validate(),
		buyer.Validate(),
		seller.Validate(),
	); err != nil {
		return nil, err
	}

	return &PurchaseOrder{
		id:            id,
		buyer:         buyer,
		seller:        seller,
		buyerLEI:      buyerLEI,
		sellerLEI:     sellerLEI,
		buyerVLEIAID:  buyerVLEIAID,
		sellerVLEIAID: sellerVLEIAID,
		description:   description,
		amount:        amount,
		status:        Created,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestorePurchaseOrder reconstructs an order from persistence with an arbitrary
// status. It validates identity fields and the status value but performs no
// transition checks; the persisted state is taken as authoritative.
func RestorePurchaseOrder(
	id kernel.OrderID,
	buyer kernel.Party,
	seller kernel.Party,
	buyerLEI string,
	sellerLEI string,
	buyerVLEIAID string,
	sellerVLEIAID string,
	description string,
	amount kernel.Amount,
	status Status,
	createdAt time.Time,
	fulfilledAt *time.Time,
) (*PurchaseOrder, error) {
	if err := errors.Join(
		id.Validate(),
		buyer.Validate(),
		seller.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &PurchaseOrder{
		id:            id,
		buyer:         buyer,
		seller:        seller,
		buyerLEI:      buyerLEI,
		sellerLEI:     sellerLEI,
		buyerVLEIAID:  buyerVLEIAID,
		sellerVLEIAID: sellerVLEIAID,
		description:   description,
		amount:        amount,
		status:        status,
		createdAt:     createdAt,
		fulfilledAt:   fulfilledAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the PurchaseOrder was properly constructed.
// Returns ErrPurchaseOrderIsNotConstructed for zero-value instances.
func (po *PurchaseOrder) Validate() error {
	if po == nil || !po.isConstructed {
		return ErrPurchaseOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (po *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && po.id == other.id
}

// ID returns the order's unique identifier.
func (po *PurchaseOrder) ID() kernel.OrderID {
	return po.id
}

// Buyer returns the buyer's identity.
func (po *PurchaseOrder) Buyer() kernel.Party {
	return po.buyer
}

// Seller returns the seller's identity.
func (po *PurchaseOrder) Seller() kernel.Party {
	return po.seller
}

// BuyerLEI returns the buyer's legal-entity identifier.
func (po *PurchaseOrder) BuyerLEI() string {
	return po.buyerLEI
}

// SellerLEI returns the seller's legal-entity identifier.
func (po *PurchaseOrder) SellerLEI() string {
	return po.sellerLEI
}

// BuyerVLEIAID returns the buyer's verifiable-credential autonomic identifier.
func (po *PurchaseOrder) BuyerVLEIAID() string {
	return po.buyerVLEIAID
}

// SellerVLEIAID returns the seller's verifiable-credential autonomic identifier.
func (po *PurchaseOrder) SellerVLEIAID() string {
	return po.sellerVLEIAID
}

// Description returns the free-form order description.
func (po *PurchaseOrder) Description() string {
	return po.description
}

// Amount returns the order amount. This exact amount is transferred on payment
// release.
func (po *PurchaseOrder) Amount() kernel.Amount {
	return po.amount
}

// Status returns the current lifecycle status.
func (po *PurchaseOrder) Status() Status {
	return po.status
}

// CreatedAt returns the creation timestamp.
func (po *PurchaseOrder) CreatedAt() time.Time {
	return po.createdAt
}

// FulfilledAt returns the fulfilment timestamp, or nil if the order never
// entered Fulfilled.
func (po *PurchaseOrder) FulfilledAt() *time.Time {
	return po.fulfilledAt
}

// Accept records the seller's commitment to the order.
//
// The caller must be the order's seller (checked first); the order must be in
// Created status. On failure the order is unchanged.
func (po *PurchaseOrder) Accept(caller kernel.Party) error {
	if !caller.IsEqual(po.seller) {
		return errs.NewUnauthorizedError("accept purchase order", caller.String())
	}

	newStatus, err := po.status.Accept()
	if err != nil {
		return err
	}

	po.status = newStatus
	return nil
}

// Fulfill records delivery by the seller and stamps the fulfilment time.
//
// The caller must be the order's seller (checked first); the order must be in
// Accepted status. fulfilledAt is set exactly once, here. On failure the order
// is unchanged.
func (po *PurchaseOrder) Fulfill(caller kernel.Party, now time.Time) error {
	if !caller.IsEqual(po.seller) {
		return errs.NewUnauthorizedError("fulfill purchase order", caller.String())
	}

	newStatus, err := po.status.Fulfill()
	if err != nil {
		return err
	}

	po.status = newStatus
	po.fulfilledAt = &now
	return nil
}

// Pay marks the order as paid after the external value transfer succeeded.
//
// The caller must be the order's buyer (checked first); the order must be in
// Fulfilled status. The fulfilment timestamp and amount are left untouched.
// On failure the order is unchanged.
func (po *PurchaseOrder) Pay(caller kernel.Party) error {
	if !caller.IsEqual(po.buyer) {
		return errs.NewUnauthorizedError("release payment", caller.String())
	}

	newStatus, err := po.status.Pay()
	if err != nil {
		return err
	}

	po.status = newStatus
	return nil
}

// Cancel withdraws the order before the seller accepted it.
//
// The caller must be the order's buyer (checked first); the order must be in
// Created status. Cancellation is a terminal status, not removal: the order
// remains persisted. On failure the order is unchanged.
func (po *PurchaseOrder) Cancel(caller kernel.Party) error {
	if !caller.IsEqual(po.buyer) {
		return errs.NewUnauthorizedError("cancel purchase order", caller.String())
	}

	newStatus, err := po.status.Cancel()
	if err != nil {
		return err
	}

	po.status = newStatus
	return nil
}
