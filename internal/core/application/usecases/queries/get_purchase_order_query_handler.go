package queries

import (
	"context"
	"database/sql"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPurchaseOrderQueryHandler reads a single purchase order straight from the
// database, bypassing the aggregate and the unit of work.
type GetPurchaseOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrderQueryHandler creates a handler for single order lookups.
func NewGetPurchaseOrderQueryHandler(db *gorm.DB) GetPurchaseOrderQueryHandler {
	return GetPurchaseOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFound error when no order
// exists under the requested identifier.
func (h GetPurchaseOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrderQuery,
) (GetPurchaseOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer,
			seller,
			buyer_lei,
			seller_lei,
			buyer_vlei_aid,
			seller_vlei_aid,
			description,
			amount,
			status,
			created_at,
			fulfilled_at
		FROM purchase_orders
		WHERE id = ?
	`, uint64(query.OrderID())).Row()

	var resp GetPurchaseOrderQueryResponse
	var id uint64
	var amount int64
	var status int
	var fulfilledAt sql.NullTime

	err := row.Scan(
		&id,
		&resp.Buyer,
		&resp.Seller,
		&resp.BuyerLEI,
		&resp.SellerLEI,
		&resp.BuyerVLEIAID,
		&resp.SellerVLEIAID,
		&resp.Description,
		&amount,
		&status,
		&resp.CreatedAt,
		&fulfilledAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPurchaseOrderQueryResponse{}, errs.NewObjectNotFoundError("id", query.OrderID())
	}
	if err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	resp.ID = kernel.OrderID(id)
	resp.Amount = kernel.NewAmount(amount)
	resp.Status = purchaseorder.Status(status)
	if fulfilledAt.Valid {
		t := fulfilledAt.Time
		resp.FulfilledAt = &t
	}

	return resp, nil
}
