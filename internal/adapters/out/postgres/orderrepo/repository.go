package orderrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormOrderRepository creates a new GORM purchase-order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and writes its party index rows. A party acting as
// both buyer and seller gets a single index row.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	index := []PartyOrderDTO{{Party: dto.Buyer, OrderID: dto.ID}}
	if dto.Seller != dto.Buyer {
		index = append(index, PartyOrderDTO{Party: dto.Seller, OrderID: dto.ID})
	}
	if err := r.db.WithContext(ctx).Create(&index).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "FulfilledAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by its identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*purchaseorder.PurchaseOrder, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order and locks its row until the surrounding
// transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.OrderID) (*purchaseorder.PurchaseOrder, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.OrderID, forUpdate bool) (*purchaseorder.PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := tx.First(&dto, "id = ?", uint64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetIDsByParty lists the order identifiers of a party from the index,
// ascending by id. A party never seen returns an empty slice.
func (r *GormOrderRepository) GetIDsByParty(ctx context.Context, party kernel.Party) ([]kernel.OrderID, error) {
	if err := party.Validate(); err != nil {
		return nil, err
	}

	var rows []PartyOrderDTO
	err := r.db.WithContext(ctx).
		Where("party = ?", party.String()).
		Order("order_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.OrderID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, kernel.OrderID(row.OrderID))
	}

	return ids, nil
}
