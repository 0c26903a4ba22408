package orderrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order. A colliding order reference surfaces as
// ErrObjectAlreadyExists; the connection must be opened with TranslateError
// for the duplicate-key detection to work.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", aggregate.OrderRef(), err)
		}
		return err
	}

	return nil
}

// Update saves an existing order unconditionally. All columns are written,
// zero values included, so progress resets and cleared fields persist.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{OrderRef: dto.OrderRef}).
		Select("*").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.OrderRef())
	}

	return nil
}

// UpdateIfStatus writes the order only when the stored status still equals
// expected, in a single conditional UPDATE. A zero row count means another
// writer changed the status first; the caller decides what that means.
func (r *GormOrderRepository) UpdateIfStatus(
	ctx context.Context, aggregate *order.Order, expected order.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{OrderRef: dto.OrderRef}).
		Where("status = ?", int(expected)).
		Select("*").
		Updates(dto)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Get retrieves an order by its external reference.
func (r *GormOrderRepository) Get(ctx context.Context, orderRef string) (*order.Order, error) {
	if orderRef == "" {
		return nil, errs.NewValueIsRequiredError("orderRef")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_ref = ?", orderRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderRef)
		}
		return nil, err
	}

	return toDomain(dto)
}
