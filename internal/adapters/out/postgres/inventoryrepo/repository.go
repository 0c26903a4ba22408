package inventoryrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements ports.InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Get retrieves the singleton ledger. ErrObjectNotFound before the first
// initialization.
func (r *GormInventoryRepository) Get(ctx context.Context) (*inventory.Ledger, error) {
	var dto LedgerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", ledgerRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory", ledgerRowID)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// Create persists a brand-new ledger row.
func (r *GormInventoryRepository) Create(ctx context.Context, aggregate *inventory.Ledger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update rewrites the whole ledger row.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Ledger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&LedgerDTO{ID: ledgerRowID}).
		Select("*").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inventory", ledgerRowID)
	}

	return nil
}
