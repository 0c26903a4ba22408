package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery retrieves the full stock ledger.
type GetInventoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates a query for the ledger.
func NewGetInventoryQuery() GetInventoryQuery {
	return GetInventoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// IngredientResponse is one stock lot in the ledger read model.
type IngredientResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Alerted  bool   `json:"alerted"`
}

// GetInventoryQueryResponse holds the ledger grouped by category.
type GetInventoryQueryResponse struct {
	Base    []IngredientResponse
	Sauce   []IngredientResponse
	Cheese  []IngredientResponse
	Veggies []IngredientResponse
	Meat    []IngredientResponse
}
