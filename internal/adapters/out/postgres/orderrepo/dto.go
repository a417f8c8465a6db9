// Package orderrepo provides data transfer objects and mapping functions for
// purchase-order persistence. It implements the repository pattern for the
// purchase-order aggregate and maintains the per-party index used by party
// listings.
package orderrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
)

// OrderDTO represents the database structure for persisting purchase-order
// aggregates. The identifier comes from the counter allocator, never from the
// database.
type OrderDTO struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement:false"`
	Buyer         string `gorm:"index"`
	Seller        string `gorm:"index"`
	BuyerLEI      string
	SellerLEI     string
	BuyerVLEIAID  string
	SellerVLEIAID string
	Description   string
	Amount        int64
	Status        int `gorm:"index"`
	CreatedAt     time.Time
	FulfilledAt   *time.Time
}

// TableName specifies the database table name for purchase orders.
func (OrderDTO) TableName() string {
	return "purchase_orders"
}

// PartyOrderDTO is one row of the per-party index: party appears (as buyer or
// seller) in the order identified by OrderID. Rows are written once, at order
// creation, and never removed; cancellation keeps the order listed.
type PartyOrderDTO struct {
	Party   string `gorm:"primaryKey"`
	OrderID uint64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the database table name for the party index.
func (PartyOrderDTO) TableName() string {
	return "party_orders"
}

// fromDomain converts a purchase-order aggregate to its database representation.
func fromDomain(po *purchaseorder.PurchaseOrder) OrderDTO {
	return OrderDTO{
		ID:            uint64(po.ID()),
		Buyer:         po.Buyer().String(),
		Seller:        po.Seller().String(),
		BuyerLEI:      po.BuyerLEI(),
		SellerLEI:     po.SellerLEI(),
		BuyerVLEIAID:  po.BuyerVLEIAID(),
		SellerVLEIAID: po.SellerVLEIAID(),
		Description:   po.Description(),
		Amount:        po.Amount().Raw(),
		Status:        int(po.Status()),
		CreatedAt:     po.CreatedAt(),
		FulfilledAt:   po.FulfilledAt(),
	}
}

// toDomain converts a database DTO back to a purchase-order aggregate using
// RestorePurchaseOrder, taking the persisted status as authoritative.
func toDomain(dto OrderDTO) (*purchaseorder.PurchaseOrder, error) {
	buyer, err := kernel.NewParty(dto.Buyer)
	if err != nil {
		return nil, err
	}

	seller, err := kernel.NewParty(dto.Seller)
	if err != nil {
		return nil, err
	}

	return purchaseorder.RestorePurchaseOrder(
		kernel.OrderID(dto.ID),
		buyer,
		seller,
		dto.BuyerLEI,
		dto.SellerLEI,
		dto.BuyerVLEIAID,
		dto.SellerVLEIAID,
		dto.Description,
		kernel.NewAmount(dto.Amount),
		purchaseorder.Status(dto.Status),
		dto.CreatedAt,
		dto.FulfilledAt,
	)
}
