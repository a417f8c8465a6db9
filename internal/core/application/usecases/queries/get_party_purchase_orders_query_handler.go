package queries

import (
	"context"

	"procurement/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetPartyPurchaseOrdersQueryHandler reads the party index maintained at order
// creation. A party with no orders gets an empty list, not an error.
type GetPartyPurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartyPurchaseOrdersQueryHandler creates a handler for party order listings.
func NewGetPartyPurchaseOrdersQueryHandler(db *gorm.DB) GetPartyPurchaseOrdersQueryHandler {
	return GetPartyPurchaseOrdersQueryHandler{db: db}
}

// Handle returns the order ids of the party, ascending by id.
func (h GetPartyPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPartyPurchaseOrdersQuery,
) ([]kernel.OrderID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids := make([]kernel.OrderID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id
		FROM party_orders
		WHERE party = ?
		ORDER BY order_id
	`, query.Party().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uint64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, kernel.OrderID(id))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
