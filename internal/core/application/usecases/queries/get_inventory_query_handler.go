package queries

import (
	"context"
	"encoding/json"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetInventoryQueryHandler retrieves the singleton ledger document.
type GetInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryQueryHandler creates a handler for ledger reads.
func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

// Handle returns the whole ledger. ErrObjectNotFound before initialization.
func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) (GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInventoryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			base,
			sauce,
			cheese,
			veggies,
			meat
		FROM inventories
	`).Rows()
	if err != nil {
		return GetInventoryQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetInventoryQueryResponse{}, err
		}
		return GetInventoryQueryResponse{}, errs.NewObjectNotFoundError("inventory", "ledger")
	}

	var base, sauce, cheese, veggies, meat []byte
	if err = rows.Scan(&base, &sauce, &cheese, &veggies, &meat); err != nil {
		return GetInventoryQueryResponse{}, err
	}

	var resp GetInventoryQueryResponse
	for _, section := range []struct {
		raw  []byte
		dest *[]IngredientResponse
	}{
		{base, &resp.Base},
		{sauce, &resp.Sauce},
		{cheese, &resp.Cheese},
		{veggies, &resp.Veggies},
		{meat, &resp.Meat},
	} {
		*section.dest = make([]IngredientResponse, 0)
		if len(section.raw) == 0 {
			continue
		}
		if err = json.Unmarshal(section.raw, section.dest); err != nil {
			return GetInventoryQueryResponse{}, err
		}
	}

	return resp, nil
}
