// Package events defines the notifications the workflow emits. Payloads are
// JSON-serializable and committed to the outbox in the same transaction as the
// state change they describe, so an operation's writes land all together or not
// at all.
package events

import (
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
)

// Topics, one per notification. Relay publishes each payload on the channel
// named by its topic.
const (
	TopicPOCreated          = "po_created"
	TopicPOAccepted         = "po_accepted"
	TopicPOFulfilled        = "po_fulfilled"
	TopicPOPaid             = "po_paid"
	TopicPOCancelled        = "po_cancelled"
	TopicCredentialVerified = "credential_verified"
)

// POCreated is emitted when an order is created.
type POCreated struct {
	ID            uint64 `json:"id"`
	Buyer         string `json:"buyer"`
	Seller        string `json:"seller"`
	Amount        int64  `json:"amount"`
	CredentialRef string `json:"credential_ref"`
}

// NewPOCreated builds the creation notification for an order.
func NewPOCreated(po *purchaseorder.PurchaseOrder, credentialRef string) POCreated {
	return POCreated{
		ID:            uint64(po.ID()),
		Buyer:         po.Buyer().String(),
		Seller:        po.Seller().String(),
		Amount:        po.Amount().Raw(),
		CredentialRef: credentialRef,
	}
}

// CredentialVerified is emitted by a successful credential gate check.
type CredentialVerified struct {
	CredentialRef string `json:"credential_ref"`
	AID           string `json:"aid"`
}

// POAccepted is emitted when the seller accepts an order.
type POAccepted struct {
	ID     uint64 `json:"id"`
	Seller string `json:"seller"`
}

// POFulfilled is emitted when the seller fulfills an order.
type POFulfilled struct {
	ID     uint64 `json:"id"`
	Seller string `json:"seller"`
}

// POPaid is emitted after the value transfer completed and the order is paid.
type POPaid struct {
	ID     uint64 `json:"id"`
	Buyer  string `json:"buyer"`
	Seller string `json:"seller"`
	Amount int64  `json:"amount"`
}

// NewPOPaid builds the payment notification for an order.
func NewPOPaid(po *purchaseorder.PurchaseOrder, buyer kernel.Party) POPaid {
	return POPaid{
		ID:     uint64(po.ID()),
		Buyer:  buyer.String(),
		Seller: po.Seller().String(),
		Amount: po.Amount().Raw(),
	}
}

// POCancelled is emitted when the buyer cancels an order.
type POCancelled struct {
	ID    uint64 `json:"id"`
	Buyer string `json:"buyer"`
}
