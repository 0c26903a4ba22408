package queries

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves a customer's cart from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle returns the cart, or an empty one when the customer has never
// stored a cart.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	resp := GetCartQueryResponse{
		Customer: query.Customer(),
		Items:    make([]CartItemResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			items,
			updated_at
		FROM carts
		WHERE customer = ?
	`, query.Customer()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		return resp, rows.Err()
	}

	var items []byte
	if err = rows.Scan(&items, &resp.UpdatedAt); err != nil {
		return GetCartQueryResponse{}, err
	}

	if len(items) > 0 {
		if err = json.Unmarshal(items, &resp.Items); err != nil {
			return GetCartQueryResponse{}, err
		}
	}

	return resp, nil
}
