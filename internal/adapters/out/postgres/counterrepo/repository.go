// Package counterrepo persists the purchase-order id allocator. The counter
// lives in its own table under a reserved name, so its keyspace can never
// collide with order ids.
package counterrepo

import (
	"context"

	"procurement/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// counterName is the reserved key of the purchase-order id counter.
const counterName = "po_counter"

// CounterDTO represents one named counter row.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value uint64
}

// TableName specifies the database table name for counters.
func (CounterDTO) TableName() string {
	return "counters"
}

// GormCounterRepository implements CounterRepository using GORM.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GORM counter repository.
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// NextID increments the counter and returns its new value. The counter row is
// read under a row lock, so concurrent allocations within separate
// transactions serialize and never observe the same value. The first
// allocation ever returns 1.
func (r *GormCounterRepository) NextID(ctx context.Context) (kernel.OrderID, error) {
	tx := r.db.WithContext(ctx)

	// Seed the row on first use; a concurrent seed loses silently.
	seed := CounterDTO{Name: counterName, Value: 0}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	var dto CounterDTO
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "name = ?", counterName).Error
	if err != nil {
		return 0, err
	}

	dto.Value++
	if err = tx.Model(&CounterDTO{}).Where("name = ?", counterName).Update("value", dto.Value).Error; err != nil {
		return 0, err
	}

	return kernel.OrderID(dto.Value), nil
}
