package customerrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Get retrieves a profile by identity.
func (r *GormCustomerRepository) Get(ctx context.Context, identity string) (*customer.Customer, error) {
	if identity == "" {
		return nil, errs.NewValueIsRequiredError("identity")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "identity = ?", identity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", identity)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Upsert stores the profile, creating the row when absent.
func (r *GormCustomerRepository) Upsert(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
