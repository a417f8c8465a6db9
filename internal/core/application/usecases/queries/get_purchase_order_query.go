package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/guard"
)

var (
	ErrGetPurchaseOrderQueryIsNotConstructed = errors.New(
		"GetPurchaseOrderQuery must be created via NewGetPurchaseOrderQuery constructor",
	)
)

// GetPurchaseOrderQuery retrieves the full state of a single purchase order by
// its identifier.
type GetPurchaseOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetPurchaseOrderQuery creates a query for a single purchase order.
func NewGetPurchaseOrderQuery(orderID kernel.OrderID) (GetPurchaseOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPurchaseOrderQuery{}, err
	}

	return GetPurchaseOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchaseOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetPurchaseOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetPurchaseOrderQueryResponse carries the read-side projection of an order.
// Cancelled orders remain retrievable like any other.
type GetPurchaseOrderQueryResponse struct {
	ID            kernel.OrderID
	Buyer         string
	Seller        string
	BuyerLEI      string
	SellerLEI     string
	BuyerVLEIAID  string
	SellerVLEIAID string
	Description   string
	Amount        kernel.Amount
	Status        purchaseorder.Status
	CreatedAt     time.Time
	FulfilledAt   *time.Time
}
