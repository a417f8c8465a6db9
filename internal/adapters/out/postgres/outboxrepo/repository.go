// Package outboxrepo persists pending notifications. Rows are written in the
// same transaction as the state change they describe and published later by
// the relay job.
package outboxrepo

import (
	"context"
	"time"

	"procurement/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutboxDTO represents one pending or published notification row.
type OutboxDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Topic       string    `gorm:"index"`
	Payload     []byte    `gorm:"type:jsonb"`
	CreatedAt   time.Time
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for the outbox.
func (OutboxDTO) TableName() string {
	return "outbox"
}

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add enqueues a message within the current transaction.
func (r *GormOutboxRepository) Add(ctx context.Context, message ports.OutboxMessage) error {
	dto := OutboxDTO{
		ID:          message.ID,
		Topic:       message.Topic,
		Payload:     message.Payload,
		CreatedAt:   message.CreatedAt,
		PublishedAt: message.PublishedAt,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListPending returns up to limit unpublished messages, oldest first.
func (r *GormOutboxRepository) ListPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, ports.OutboxMessage{
			ID:          dto.ID,
			Topic:       dto.Topic,
			Payload:     dto.Payload,
			CreatedAt:   dto.CreatedAt,
			PublishedAt: dto.PublishedAt,
		})
	}

	return messages, nil
}

// MarkPublished records that a message was delivered to the event bus.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&OutboxDTO{}).
		Where("id = ?", id).
		Update("published_at", publishedAt).Error
}
