package orderrepo

import (
	"context"
	"errors"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its lines. The database must be opened with
// gorm.Config.TranslateError so a unique violation surfaces as
// gorm.ErrDuplicatedKey.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return order.ErrDuplicateActiveOrder
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update writes status and receipt. Lines never change after placement.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Google()).
		Updates(map[string]any{
			"status":      int(aggregate.Status()),
			"is_received": aggregate.IsReceived(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) HasActive(ctx context.Context, studentID string, deliveryDate kernel.Date) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("student_id = ? AND delivery_date = ? AND status = ?", studentID, deliveryDate.Time(), int(order.Active)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Google())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}
	return nil
}

func (r *GormOrderRepository) DeleteAll(ctx context.Context, deliveryDate *kernel.Date) (int64, error) {
	tx := r.db.WithContext(ctx)
	if deliveryDate != nil {
		tx = tx.Where("delivery_date = ?", deliveryDate.Time())
	} else {
		tx = tx.Where("1 = 1")
	}

	result := tx.Delete(&OrderDTO{})
	return result.RowsAffected, result.Error
}
