package cartrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Get retrieves a customer's cart. ErrObjectNotFound when the customer has
// never stored one.
func (r *GormCartRepository) Get(ctx context.Context, customer string) (*cart.Cart, error) {
	if customer == "" {
		return nil, errs.NewValueIsRequiredError("customer")
	}

	var dto CartDTO
	if err := r.db.WithContext(ctx).First(&dto, "customer = ?", customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", customer)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Upsert rewrites the cart document, creating the row on first mutation.
func (r *GormCartRepository) Upsert(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
