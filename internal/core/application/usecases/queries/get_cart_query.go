package queries

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart. A customer with no stored cart
// gets an empty one back; absence is a valid zero state, not an error.
type GetCartQuery struct {
	customer string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for one customer's cart.
func NewGetCartQuery(customer string) (GetCartQuery, error) {
	if customer == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("customer")
	}

	return GetCartQuery{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// Customer returns the owning customer identity.
func (q GetCartQuery) Customer() string {
	return q.customer
}

// GetCartQueryResponse is the cart read model.
type GetCartQueryResponse struct {
	Customer  string
	Items     []CartItemResponse
	UpdatedAt time.Time
}
